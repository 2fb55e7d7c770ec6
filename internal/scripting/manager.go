package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/Dimillian/daggerfall-unity/internal/game/travel"
)

// GlobalScope is the reserved scope for shared scripts loaded via
// LoadGlobal. CallHook falls back to it when a scope has no VM.
const GlobalScope = "__global__"

// Roller draws a uniform integer in [min, max] inclusive.
type Roller interface {
	Range(min, max int) int
}

// vm is one sandboxed LState. LStates are single-threaded, so every use
// holds mu.
type vm struct {
	mu    sync.Mutex
	L     *lua.LState
	limit int
}

// Manager owns one sandboxed VM per scope (a ruleset or a mod) and exposes
// hook dispatch.
//
// Manager is safe for concurrent use. Calls into the same scope are
// serialized; different scopes run concurrently.
type Manager struct {
	mu     sync.RWMutex
	vms    map[string]*vm
	roller Roller
	trips  *travel.Estimator
	logger *zap.Logger
}

// NewManager creates a Manager whose scripts roll with roller and price
// trips with trips.
//
// Precondition: roller, trips and logger must be non-nil; NewManager panics
// otherwise.
// Postcondition: Returns a Manager with no scopes loaded.
func NewManager(roller Roller, trips *travel.Estimator, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting.NewManager: roller must not be nil")
	}
	if trips == nil {
		panic("scripting.NewManager: trips must not be nil")
	}
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{
		vms:    make(map[string]*vm),
		roller: roller,
		trips:  trips,
		logger: logger,
	}
}

// Load creates a sandboxed VM for scope, registers the rules module, then
// executes every *.lua file in scriptDir in lexicographic order. A VM
// already loaded for scope is replaced.
//
// Precondition: scope must be non-empty; scriptDir must be a readable directory.
// Postcondition: returns an error naming the file on any Lua load failure,
// leaving the previous VM in place.
func (m *Manager) Load(scope, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, scope, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(files)

	v := m.newVM(instLimit)
	for _, path := range files {
		cancel := arm(v.L, v.limit)
		err := v.L.DoFile(path)
		cancel()
		if err != nil {
			v.L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, scope, err)
		}
	}
	m.install(scope, v)
	m.logger.Debug("scripts loaded", zap.String("scope", scope), zap.Int("files", len(files)))
	return nil
}

// LoadGlobal loads scriptDir into GlobalScope.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.Load(GlobalScope, scriptDir, instLimit)
}

// LoadString creates or replaces scope's VM from a single chunk of source.
//
// Postcondition: returns the Lua compile or runtime error, leaving the
// previous VM in place.
func (m *Manager) LoadString(scope, src string, instLimit int) error {
	v := m.newVM(instLimit)
	cancel := arm(v.L, v.limit)
	err := v.L.DoString(src)
	cancel()
	if err != nil {
		v.L.Close()
		return fmt.Errorf("scripting: loading source for %q: %w", scope, err)
	}
	m.install(scope, v)
	return nil
}

func (m *Manager) newVM(instLimit int) *vm {
	L := NewSandboxedState(instLimit)
	m.RegisterModules(L)
	return &vm{L: L, limit: instLimit}
}

func (m *Manager) install(scope string, v *vm) {
	m.mu.Lock()
	old := m.vms[scope]
	m.vms[scope] = v
	m.mu.Unlock()
	if old != nil {
		old.mu.Lock()
		old.L.Close()
		old.mu.Unlock()
	}
}

func (m *Manager) lookup(scope string) *vm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vms[scope]; ok {
		return v
	}
	return m.vms[GlobalScope]
}

// CallHook calls the named Lua global function in scope's VM, falling back
// to GlobalScope when scope has no VM. Returns (LNil, nil) if the hook is
// not defined or no VM exists. Lua runtime errors, including a spent opcode
// budget, are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(scope, hook string, args ...lua.LValue) (lua.LValue, error) {
	v := m.lookup(scope)
	if v == nil {
		m.logger.Info("scripting: no VM for scope",
			zap.String("scope", scope),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.L.IsClosed() {
		return lua.LNil, nil
	}
	fn := v.L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, nil
	}

	cancel := arm(v.L, v.limit)
	defer cancel()
	if err := v.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("scope", scope),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := v.L.Get(-1)
	v.L.Pop(1)
	return ret, nil
}

// Eval evaluates a Lua expression in scope's VM and returns its value.
// Unlike CallHook, errors are returned: Eval serves interactive use.
//
// Postcondition: returns an error when no VM exists for scope or the
// expression fails to compile or run.
func (m *Manager) Eval(scope, expr string) (lua.LValue, error) {
	v := m.lookup(scope)
	if v == nil {
		return lua.LNil, fmt.Errorf("scripting: no VM for scope %q", scope)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	fn, err := v.L.LoadString("return " + expr)
	if err != nil {
		return lua.LNil, fmt.Errorf("scripting: compiling %q: %w", expr, err)
	}
	cancel := arm(v.L, v.limit)
	defer cancel()
	if err := v.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
		return lua.LNil, fmt.Errorf("scripting: evaluating %q: %w", expr, err)
	}
	ret := v.L.Get(-1)
	v.L.Pop(1)
	return ret, nil
}

// Close releases every VM. The Manager may be reused by loading again.
func (m *Manager) Close() {
	m.mu.Lock()
	vms := m.vms
	m.vms = make(map[string]*vm)
	m.mu.Unlock()
	for _, v := range vms {
		v.mu.Lock()
		v.L.Close()
		v.mu.Unlock()
	}
}
