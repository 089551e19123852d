package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/underwell/command"
)

// binding is the effect of one key press
type binding struct {
	cmd     command.Command
	tool    command.Tool
	setTool bool
	mute    bool
	quit    bool
}

// keyBinding maps terminal keys to actions
//
//	1-8    select tool in toolbar order
//	s      start
//	p, spc toggle pause
//	r      reset
//	c      clear placed structures
//	m      toggle audio
//	q, esc quit
func keyBinding(key tcell.Key, r rune) (binding, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return binding{quit: true}, true
	case tcell.KeyRune:
	default:
		return binding{}, false
	}

	if r >= '1' && r <= '8' {
		tools := command.Tools()
		return binding{tool: tools[r-'1'], setTool: true}, true
	}

	switch r {
	case 's', 'S':
		return binding{cmd: command.Start{}}, true
	case 'p', 'P', ' ':
		return binding{cmd: command.TogglePause{}}, true
	case 'r', 'R':
		return binding{cmd: command.Reset{}}, true
	case 'c', 'C':
		return binding{cmd: command.Clear{}}, true
	case 'm', 'M':
		return binding{mute: true}, true
	case 'q', 'Q':
		return binding{quit: true}, true
	}
	return binding{}, false
}
