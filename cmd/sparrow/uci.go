// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// uci.go implements the subset of the UCI protocol
// (http://wbec-ridderkerk.nl/html/UCIProtocol.html) needed to drive
// the engine from a GUI: position setup, a depth-bounded "go", and the
// handshake commands. Time control, pondering, MultiPV and engine
// handicap levels are intentionally not implemented; search only ever
// takes a max-depth argument.

package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sparrowchess/sparrow/engine"
)

var errQuit = errors.New("quit")

const defaultDepth = 6

// uciLogger prints search progress in UCI "info" lines.
type uciLogger struct{}

func (uciLogger) BeginSearch() {}
func (uciLogger) EndSearch()   {}

func (uciLogger) PrintPV(stats engine.Stats, score int, pv []engine.Move) {
	fmt.Printf("info depth %d nodes %d score cp %d pv", stats.Depth, stats.Nodes, score)
	for _, m := range pv {
		fmt.Printf(" %v", m)
	}
	fmt.Println()
}

// UCI holds the engine instance driving one UCI session.
type UCI struct {
	Engine *engine.Engine
	board  *engine.Board
}

// NewUCI builds a UCI session with a fresh engine over the starting
// position.
func NewUCI() *UCI {
	e := engine.NewEngine(engine.DefaultOptions())
	e.SetLogger(uciLogger{})
	board := engine.NewBoard()
	e.ResetHistory(board.Zobrist())
	e.SetPosition(board)
	return &UCI{Engine: e, board: board}
}

var reCmd = regexp.MustCompile(`^[[:word:]]+\b`)

// Execute dispatches a single line of UCI input.
func (u *UCI) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd := reCmd.FindString(line)
	if cmd == "" {
		return fmt.Errorf("invalid command line")
	}

	switch cmd {
	case "uci":
		return u.uci()
	case "isready":
		fmt.Println("readyok")
		return nil
	case "ucinewgame":
		return u.ucinewgame()
	case "position":
		return u.position(line)
	case "go":
		return u.goCmd(line)
	case "stop":
		return nil
	case "quit":
		return errQuit
	default:
		return fmt.Errorf("unhandled command %s", cmd)
	}
}

func (u *UCI) uci() error {
	fmt.Println("id name sparrow")
	fmt.Println("id author the sparrow authors")
	fmt.Println("option name Hash type spin default 32 min 1 max 4096")
	fmt.Println("uciok")
	return nil
}

func (u *UCI) ucinewgame() error {
	u.Engine = engine.NewEngine(engine.DefaultOptions())
	u.Engine.SetLogger(uciLogger{})
	u.board = engine.NewBoard()
	u.Engine.ResetHistory(u.board.Zobrist())
	u.Engine.SetPosition(u.board)
	return nil
}

func (u *UCI) position(line string) error {
	args := strings.Fields(line)[1:]
	if len(args) == 0 {
		return fmt.Errorf("expected argument for 'position'")
	}

	var board *engine.Board
	var err error
	i := 0
	switch args[0] {
	case "startpos":
		board = engine.NewBoard()
		i = 1
	case "fen":
		i = 1
		for i < len(args) && args[i] != "moves" {
			i++
		}
		board, err = engine.NewBoardFromFEN(strings.Join(args[1:i], " "))
	default:
		return fmt.Errorf("unknown position command: %s", args[0])
	}
	if err != nil {
		return err
	}

	u.Engine.ResetHistory(board.Zobrist())

	if i < len(args) {
		if args[i] != "moves" {
			return fmt.Errorf("expected 'moves', got %q", args[i])
		}
		for _, s := range args[i+1:] {
			m, err := engine.ParseUCIMove(board, s)
			if err != nil {
				return err
			}
			board = board.MakeMove(m)
			u.Engine.PushHistory(board.Zobrist())
		}
	}

	u.board = board
	u.Engine.SetPosition(board)
	return nil
}

func (u *UCI) goCmd(line string) error {
	args := strings.Fields(line)[1:]
	depth := defaultDepth
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
			i++
		}
	}

	_, move, ok := u.Engine.BestMove(depth)
	if !ok {
		fmt.Fprintln(os.Stderr, "info string no legal moves")
		fmt.Println("bestmove (none)")
		return nil
	}
	fmt.Printf("bestmove %v\n", move)
	return nil
}
