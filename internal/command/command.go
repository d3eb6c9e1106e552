// Package command interprets command files: a first line naming the
// operation followed by its operands, one per line.
//
//	add          hash_sha256
//	3            hello
//	4
//
// Every outcome, including a missing file or an unknown keyword, is
// reported as Result text.  Processing never fails at the Go level.
package command

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cmdsrv/internal/hasher"
	"cmdsrv/util"
)

// MaxResultLen caps the reply text in bytes.
const MaxResultLen = 255

// Result is the outcome of processing one command file.
type Result struct {
	Op   Operation
	Text string
}

// Processor opens and evaluates command files.  A zero Processor reads
// any path the process can open; with a root it is confined to that
// directory tree.
type Processor struct {
	root   *os.Root
	logger *util.Logger
}

// NewProcessor returns a Processor.  When root is non-empty, command
// file paths are resolved beneath it and may not escape it.
func NewProcessor(root string, logger *util.Logger) (*Processor, error) {
	p := &Processor{logger: logger}
	if root == "" {
		return p, nil
	}
	r, err := os.OpenRoot(root)
	if err != nil {
		return nil, fmt.Errorf("open root %s: %w", root, err)
	}
	p.root = r
	return p, nil
}

// Close releases the sandbox root, if any.
func (p *Processor) Close() error {
	if p.root == nil {
		return nil
	}
	return p.root.Close()
}

// Process reads the command file at path and returns its result.
func (p *Processor) Process(path string) Result {
	f, err := p.open(path)
	if err != nil {
		p.logger.Warn("error opening file %s: %v", path, err)
		return Result{Op: OpNone, Text: bounded("No such file " + path)}
	}
	defer f.Close()

	return p.eval(bufio.NewReader(f))
}

func (p *Processor) open(path string) (*os.File, error) {
	if p.root == nil {
		return os.Open(path)
	}
	name := strings.TrimLeft(filepath.ToSlash(path), "/")
	if name == "" {
		name = "."
	}
	return p.root.Open(filepath.FromSlash(name))
}

func (p *Processor) eval(r *bufio.Reader) Result {
	first, _ := readLine(r)
	op := ParseOperation(first)
	p.logger.Info("operation: %s", op)

	switch {
	case op.IsArithmetic():
		a, _ := readLine(r)
		b, _ := readLine(r)
		res := op.Apply(Atoi(a), Atoi(b))
		return Result{Op: op, Text: strconv.FormatUint(uint64(res), 10)}

	case op != OpNone:
		v, _ := op.Variant()
		msg, _ := readLine(r)
		msg = strings.TrimSuffix(msg, "\n")
		return Result{Op: op, Text: hasher.Hex(v, []byte(msg))}

	default:
		p.logger.Info("unknown operation (%s)", strings.TrimSuffix(first, "\n"))
		return Result{Op: OpNone, Text: bounded("Unknown operation (" + first + ")")}
	}
}

func bounded(s string) string {
	if len(s) > MaxResultLen {
		return s[:MaxResultLen]
	}
	return s
}
