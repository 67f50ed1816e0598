// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package resolver

import "github.com/tomtom215/mediabrowser/internal/models"

// Listener receives change notifications in the order the state changed.
// Values passed to a listener are copies shared by all listeners and must not
// be mutated. Listeners run while notifications are serialized, so they must
// not call mutating Resolver methods synchronously; reading state is fine.
type Listener interface {
	OnPathChanged(path string)
	OnContentChanged(content *models.Container)
	OnTabsChanged(tabs []models.Node)
	// OnNavigationError receives nil when a previous error is cleared.
	OnNavigationError(err *NavigationError)
}

// ListenerFuncs adapts optional functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	PathChanged     func(path string)
	ContentChanged  func(content *models.Container)
	TabsChanged     func(tabs []models.Node)
	NavigationError func(err *NavigationError)
}

var _ Listener = ListenerFuncs{}

func (f ListenerFuncs) OnPathChanged(path string) {
	if f.PathChanged != nil {
		f.PathChanged(path)
	}
}

func (f ListenerFuncs) OnContentChanged(content *models.Container) {
	if f.ContentChanged != nil {
		f.ContentChanged(content)
	}
}

func (f ListenerFuncs) OnTabsChanged(tabs []models.Node) {
	if f.TabsChanged != nil {
		f.TabsChanged(tabs)
	}
}

func (f ListenerFuncs) OnNavigationError(err *NavigationError) {
	if f.NavigationError != nil {
		f.NavigationError(err)
	}
}

// notification is one pending listener callback.
type notification func(Listener)

func pathChanged(path string) notification {
	return func(l Listener) { l.OnPathChanged(path) }
}

func contentChanged(c *models.Container) notification {
	return func(l Listener) { l.OnContentChanged(c) }
}

func tabsChanged(tabs []models.Node) notification {
	return func(l Listener) { l.OnTabsChanged(tabs) }
}

func navigationError(err *NavigationError) notification {
	return func(l Listener) { l.OnNavigationError(err) }
}
