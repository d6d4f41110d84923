// Package view holds the transient, per-session UI state of a cheatsheet page:
// which tab is selected and which sections are expanded. A Session never
// touches the content tree; many sessions may share one page.
package view

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/quickref/internal/content"
)

var (
	ErrNoSuchTab     = errors.New("no such tab")
	ErrNoSuchSection = errors.New("no such section")
)

// Session is the view state of one reader. The zero value is not usable; call New.
type Session struct {
	page     *content.Page
	selected int
	expanded [][]bool
}

// New returns the initial state: first tab selected, every section collapsed.
func New(page *content.Page) *Session {
	expanded := make([][]bool, len(page.Tabs))
	for i, tab := range page.Tabs {
		expanded[i] = make([]bool, len(tab.Sections))
	}
	return &Session{page: page, expanded: expanded}
}

// Page returns the content tree the session reads from.
func (s *Session) Page() *content.Page { return s.page }

// Selected returns the index of the visible tab.
func (s *Session) Selected() int { return s.selected }

// SelectedTab returns the visible tab.
func (s *Session) SelectedTab() content.Tab { return s.page.Tabs[s.selected] }

// SelectTab makes tab i visible.
func (s *Session) SelectTab(i int) error {
	if i < 0 || i >= len(s.page.Tabs) {
		return fmt.Errorf("%w: %d", ErrNoSuchTab, i)
	}
	s.selected = i
	return nil
}

// NextTab selects the following tab, wrapping to the first.
func (s *Session) NextTab() {
	if n := len(s.page.Tabs); n > 0 {
		s.selected = (s.selected + 1) % n
	}
}

// PrevTab selects the preceding tab, wrapping to the last.
func (s *Session) PrevTab() {
	if n := len(s.page.Tabs); n > 0 {
		s.selected = (s.selected - 1 + n) % n
	}
}

// Toggle flips the expanded flag of a section and returns the new value.
func (s *Session) Toggle(tab, section int) (bool, error) {
	if err := s.check(tab, section); err != nil {
		return false, err
	}
	s.expanded[tab][section] = !s.expanded[tab][section]
	return s.expanded[tab][section], nil
}

// Expanded reports whether a section is expanded. Unknown sections are collapsed.
func (s *Session) Expanded(tab, section int) bool {
	if s.check(tab, section) != nil {
		return false
	}
	return s.expanded[tab][section]
}

// ExpandAll expands every section of a tab.
func (s *Session) ExpandAll(tab int) error { return s.setAll(tab, true) }

// CollapseAll collapses every section of a tab.
func (s *Session) CollapseAll(tab int) error { return s.setAll(tab, false) }

// ExpandedCount returns how many sections of a tab are expanded.
func (s *Session) ExpandedCount(tab int) int {
	if tab < 0 || tab >= len(s.expanded) {
		return 0
	}
	n := 0
	for _, open := range s.expanded[tab] {
		if open {
			n++
		}
	}
	return n
}

func (s *Session) setAll(tab int, open bool) error {
	if tab < 0 || tab >= len(s.expanded) {
		return fmt.Errorf("%w: %d", ErrNoSuchTab, tab)
	}
	for i := range s.expanded[tab] {
		s.expanded[tab][i] = open
	}
	return nil
}

func (s *Session) check(tab, section int) error {
	if tab < 0 || tab >= len(s.expanded) {
		return fmt.Errorf("%w: %d", ErrNoSuchTab, tab)
	}
	if section < 0 || section >= len(s.expanded[tab]) {
		return fmt.Errorf("%w: %d in tab %d", ErrNoSuchSection, section, tab)
	}
	return nil
}
