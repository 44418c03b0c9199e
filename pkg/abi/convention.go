// Package abi describes Linux syscall register conventions as data.
//
// The entry points in pkg/syscall hard-code the native convention in
// assembly. The tables here say the same thing in a form that can be
// printed, checked and compared against the ABI of an ELF binary.
package abi

import (
	"fmt"
	"runtime"
	"sort"
)

type Role int

const (
	RoleNumber Role = iota
	RoleArg
	RoleResult
	RoleErrorFlag
	RoleScratch
)

func (r Role) String() string {
	switch r {
	case RoleNumber:
		return "number"
	case RoleArg:
		return "arg"
	case RoleResult:
		return "result"
	case RoleErrorFlag:
		return "error-flag"
	case RoleScratch:
		return "scratch"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

type Register struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

func (r Register) String() string {
	return fmt.Sprintf("%s(%d)", r.Name, r.Number)
}

// MaxArgs is the most arguments any Linux syscall takes.
const MaxArgs = 6

type Convention struct {
	Arch string `json:"arch"`
	Trap string `json:"trap"`

	Number Register   `json:"number"`
	Result Register   `json:"result"`
	Args   []Register `json:"args"`

	// StackArgs counts arguments that follow Args on the user stack
	// instead of in registers.
	StackArgs int `json:"stack_args"`

	// ErrorFlag is nil when the ABI returns -errno in Result.
	ErrorFlag *Register `json:"error_flag,omitempty"`

	// Scratch is destroyed by every call, whatever the arity.
	Scratch []Register `json:"scratch"`

	// SysnoBase is the first syscall number of the ABI's table.
	SysnoBase uintptr `json:"sysno_base"`
}

func reg(name string, n int) Register { return Register{Name: name, Number: n} }

func regp(name string, n int) *Register {
	r := reg(name, n)
	return &r
}

// mips temporaries t0-t9
var mipsTemps = []Register{
	reg("t0", 8), reg("t1", 9), reg("t2", 10), reg("t3", 11),
	reg("t4", 12), reg("t5", 13), reg("t6", 14), reg("t7", 15),
	reg("t8", 24), reg("t9", 25),
}

var (
	// MIPS64 is the n64 ABI. Args 5 and 6 ride in t0 and t1, which are
	// scratch on every call.
	MIPS64 = Convention{
		Arch:   "mips64",
		Trap:   "syscall",
		Number: reg("v0", 2),
		Result: reg("v0", 2),
		Args: []Register{
			reg("a0", 4), reg("a1", 5), reg("a2", 6), reg("a3", 7),
			reg("t0", 8), reg("t1", 9),
		},
		ErrorFlag: regp("a3", 7),
		Scratch:   mipsTemps,
		SysnoBase: 5000,
	}

	// MIPSN32 traps exactly like n64 with its own syscall table.
	MIPSN32 = Convention{
		Arch:      "mips64p32",
		Trap:      "syscall",
		Number:    MIPS64.Number,
		Result:    MIPS64.Result,
		Args:      MIPS64.Args,
		ErrorFlag: MIPS64.ErrorFlag,
		Scratch:   mipsTemps,
		SysnoBase: 6000,
	}

	// MIPS is o32, which puts args 5 and 6 on the stack.
	MIPS = Convention{
		Arch:   "mips",
		Trap:   "syscall",
		Number: reg("v0", 2),
		Result: reg("v0", 2),
		Args: []Register{
			reg("a0", 4), reg("a1", 5), reg("a2", 6), reg("a3", 7),
		},
		StackArgs: 2,
		ErrorFlag: regp("a3", 7),
		Scratch:   mipsTemps,
		SysnoBase: 4000,
	}

	AMD64 = Convention{
		Arch:   "amd64",
		Trap:   "syscall",
		Number: reg("rax", 0),
		Result: reg("rax", 0),
		Args: []Register{
			reg("rdi", 7), reg("rsi", 6), reg("rdx", 2),
			reg("r10", 10), reg("r8", 8), reg("r9", 9),
		},
		Scratch: []Register{reg("rcx", 1), reg("r11", 11)},
	}

	ARM64 = Convention{
		Arch:   "arm64",
		Trap:   "svc #0",
		Number: reg("x8", 8),
		Result: reg("x0", 0),
		Args: []Register{
			reg("x0", 0), reg("x1", 1), reg("x2", 2),
			reg("x3", 3), reg("x4", 4), reg("x5", 5),
		},
	}
)

var conventions = map[string]*Convention{
	"mips64":    &MIPS64,
	"mips64le":  &MIPS64,
	"mips64p32": &MIPSN32,
	"mips":      &MIPS,
	"mipsle":    &MIPS,
	"amd64":     &AMD64,
	"arm64":     &ARM64,
}

// Lookup returns the convention for a GOARCH value.
func Lookup(arch string) (*Convention, bool) {
	c, ok := conventions[arch]
	return c, ok
}

// Native returns the convention of the running binary.
func Native() (*Convention, bool) {
	return Lookup(runtime.GOARCH)
}

// Arches lists every name Lookup accepts, sorted.
func Arches() []string {
	names := make([]string, 0, len(conventions))
	for name := range conventions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelfEncoding reports whether the kernel returns -errno directly.
func (c *Convention) SelfEncoding() bool {
	return c.ErrorFlag == nil
}

func clampArity(arity int) int {
	if arity < 0 {
		return 0
	}
	if arity > MaxArgs {
		return MaxArgs
	}
	return arity
}

// Inputs lists the registers loaded before the trap for a call of the
// given arity: the number register, then the register-passed arguments.
func (c *Convention) Inputs(arity int) []Register {
	arity = clampArity(arity)
	if arity > len(c.Args) {
		arity = len(c.Args)
	}
	in := make([]Register, 0, arity+1)
	in = append(in, c.Number)
	return append(in, c.Args[:arity]...)
}

// Outputs lists the registers read back after the trap.
func (c *Convention) Outputs() []Register {
	out := []Register{c.Result}
	if c.ErrorFlag != nil {
		out = append(out, *c.ErrorFlag)
	}
	return out
}

// Clobbered lists the registers destroyed without carrying a value back.
// The set is the same for every arity, including registers that carried
// arguments in.
func (c *Convention) Clobbered(arity int) []Register {
	return append([]Register(nil), c.Scratch...)
}

// Altered lists every register whose value can differ after the call.
func (c *Convention) Altered(arity int) []Register {
	seen := map[int]bool{}
	var regs []Register
	for _, r := range append(c.Outputs(), c.Clobbered(arity)...) {
		if seen[r.Number] {
			continue
		}
		seen[r.Number] = true
		regs = append(regs, r)
	}
	return regs
}

// RoleOf returns every role register n plays in a call of the given arity.
func (c *Convention) RoleOf(n, arity int) []Role {
	var roles []Role
	if c.Number.Number == n {
		roles = append(roles, RoleNumber)
	}
	for _, r := range c.Inputs(arity)[1:] {
		if r.Number == n {
			roles = append(roles, RoleArg)
		}
	}
	if c.Result.Number == n {
		roles = append(roles, RoleResult)
	}
	if c.ErrorFlag != nil && c.ErrorFlag.Number == n {
		roles = append(roles, RoleErrorFlag)
	}
	for _, r := range c.Scratch {
		if r.Number == n {
			roles = append(roles, RoleScratch)
		}
	}
	return roles
}

// Validate checks the structural rules every convention has to obey.
func (c *Convention) Validate() error {
	if len(c.Args)+c.StackArgs != MaxArgs {
		return fmt.Errorf("%s: %d register and %d stack args, want %d", c.Arch, len(c.Args), c.StackArgs, MaxArgs)
	}
	seen := map[int]bool{}
	for _, r := range c.Args {
		if seen[r.Number] {
			return fmt.Errorf("%s: %s used for two arguments", c.Arch, r)
		}
		seen[r.Number] = true
	}
	for _, r := range c.Scratch {
		if r.Number == c.Result.Number {
			return fmt.Errorf("%s: result register %s marked scratch", c.Arch, r)
		}
		if c.ErrorFlag != nil && r.Number == c.ErrorFlag.Number {
			return fmt.Errorf("%s: error flag %s marked scratch", c.Arch, r)
		}
	}
	if c.ErrorFlag != nil && c.ErrorFlag.Number == c.Result.Number {
		return fmt.Errorf("%s: error flag shares the result register", c.Arch)
	}
	return nil
}
