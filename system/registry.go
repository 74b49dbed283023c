// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/glazier/config"
)

// DriverFactory creates a driver for the given configuration. It must
// not acquire native resources; that is done by [Driver.Init].
type DriverFactory func(cfg *config.Config) (Driver, error)

// PreferredDrivers is the order in which registered drivers are tried
// when the configuration does not name one.
var PreferredDrivers = []string{"desktop", "x11", "offscreen"}

var (
	registryMu sync.Mutex
	registry   = map[string]DriverFactory{}
)

// RegisterDriver makes a driver available by name. Driver packages call
// it from init, so importing a driver package for its side effects is
// enough to make it selectable.
func RegisterDriver(name string, f DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("system: RegisterDriver factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("system: RegisterDriver called twice for driver " + name)
	}
	registry[name] = f
}

// Drivers returns the names of the registered drivers, in preference order.
func Drivers() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	var names []string
	for _, n := range PreferredDrivers {
		if _, ok := registry[n]; ok {
			names = append(names, n)
		}
	}
	var rest []string
	for n := range registry {
		if !slices.Contains(PreferredDrivers, n) {
			rest = append(rest, n)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}

// newDriver creates the driver named by cfg.Backend, or the most
// preferred registered driver if it is empty.
func newDriver(cfg *config.Config) (string, Driver, error) {
	name := cfg.Backend
	if name == "" {
		names := Drivers()
		if len(names) == 0 {
			return "", nil, fmt.Errorf("no driver is registered")
		}
		name = names[0]
	}
	registryMu.Lock()
	f, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return name, nil, fmt.Errorf("unknown driver %q (registered: %v)", name, Drivers())
	}
	d, err := f(cfg)
	return name, d, err
}
