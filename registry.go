// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package polylog

import (
	"maps"
	"reflect"
	"slices"
	"sync"
)

// NullProviderName is the name of the provider registered in every Registry,
// active until another provider is selected.
const NullProviderName = "null"

var loggerType = reflect.TypeFor[Logger]()

// Registry maps provider names to providers and tracks the active one. The
// zero value is not usable, create one with NewRegistry.
type Registry struct {
	lock       sync.RWMutex
	providers  map[string]Provider
	active     Provider
	activeName string
}

// NewRegistry returns a registry holding only the "null" provider.
func NewRegistry() *Registry {
	r := &Registry{}
	r.reset()
	return r
}

// For resolves the logger name for value and returns the logger the active
// provider binds to it.
func (r *Registry) For(value any) Logger {
	name := ResolveName(value)
	return r.ActiveProvider().Logger(name)
}

// ActiveProvider returns the active provider. The "null" provider is selected
// if no provider has been selected yet.
func (r *Registry) ActiveProvider() Provider {
	r.lock.RLock()
	provider := r.active
	r.lock.RUnlock()
	if provider != nil {
		return provider
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	if r.active == nil {
		r.active = r.providers[NullProviderName]
		r.activeName = NullProviderName
	}
	return r.active
}

// ActiveName returns the name used to select the active provider, or the empty
// string if no provider has been selected yet.
func (r *Registry) ActiveName() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.activeName
}

// Providers returns the sorted names of the registered providers.
func (r *Registry) Providers() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return slices.Sorted(maps.Keys(r.providers))
}

// UseProvider selects the provider registered under name. The active provider
// is left untouched when name is unknown.
func (r *Registry) UseProvider(name string) (Provider, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	provider, ok := r.providers[name]
	if !ok {
		return nil, &UnknownProviderError{Name: name}
	}

	r.active = provider
	r.activeName = name
	return provider, nil
}

// RegisterProvider stores provider under name, replacing any provider with the
// same name. Replacing the active provider does not change what
// ActiveProvider returns until UseProvider is called again.
func (r *Registry) RegisterProvider(name string, provider Provider) (Provider, error) {
	if isNilValue(provider) {
		return nil, &InvalidProviderError{Name: name, Reason: MissingLoggerMethod}
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.providers[name] = provider
	return provider, nil
}

// RegisterProviderValue registers a value built at runtime. Besides a Provider
// it accepts a func(string) Logger or any value exposing a Logger method with
// that shape; the method is looked up by reflection and its signature checked.
func (r *Registry) RegisterProviderValue(name string, value any) (Provider, error) {
	provider, err := providerFromValue(name, value)
	if err != nil {
		return nil, err
	}

	return r.RegisterProvider(name, provider)
}

// Reset drops every registered provider and restores the initial state. It
// exists for test isolation.
func (r *Registry) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reset()
}

func (r *Registry) reset() {
	r.providers = map[string]Provider{
		NullProviderName: NewSoloProvider(nullLogger),
	}
	r.active = nil
	r.activeName = ""
}

func providerFromValue(name string, value any) (Provider, error) {
	switch v := value.(type) {
	case Provider:
		return v, nil
	case func(string) Logger:
		if v == nil {
			return nil, &InvalidProviderError{Name: name, Reason: MissingLoggerMethod}
		}
		return ProviderFunc(v), nil
	}

	if isNilValue(value) {
		return nil, &InvalidProviderError{Name: name, Reason: MissingLoggerMethod}
	}

	method := reflect.ValueOf(value)
	if method.Kind() != reflect.Func {
		method = method.MethodByName("Logger")
		if !method.IsValid() {
			return nil, &InvalidProviderError{Name: name, Reason: MissingLoggerMethod}
		}
	}

	methodType := method.Type()
	if methodType.NumIn() != 1 {
		return nil, &InvalidProviderError{Name: name, Reason: WrongLoggerArity, Arity: methodType.NumIn()}
	}

	if methodType.IsVariadic() ||
		methodType.In(0).Kind() != reflect.String ||
		methodType.NumOut() != 1 ||
		!methodType.Out(0).Implements(loggerType) {
		return nil, &InvalidProviderError{Name: name, Reason: WrongLoggerSignature}
	}

	argType := methodType.In(0)
	return ProviderFunc(func(loggerName string) Logger {
		out := method.Call([]reflect.Value{reflect.ValueOf(loggerName).Convert(argType)})
		logger, _ := out[0].Interface().(Logger)
		return logger
	}), nil
}
