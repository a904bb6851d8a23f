// Command calcium-eval is an interactive and scriptable front end over the
// calcium exact-arithmetic kernel: it parses a small infix expression
// grammar into *ca.Ca values, then either prints a numeric enclosure, runs
// one of package predicate's cascades, or factors a rational/integer
// result. Subcommand dispatch and flag handling follow cmd/ntrucli's
// usage()/subcommand convention.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"calcium/ca"
	"calcium/context"
	"calcium/convert"
	"calcium/predicate"
	"calcium/transcendental"
	"calcium/truth"
)

func usage() {
	fmt.Println(`usage: calcium-eval <eval|check|factor|repl> [options]

Subcommands:
  eval "<expr>"
           Evaluate an expression and print its numeric enclosure.
           Flags:
             -prec   <int>  working precision in bits (default: 256)
             -digits <int>  decimal digits to print (default: 20)

  check <predicate> "<expr>" ["<expr2>"]
           Run a three-valued predicate and print True/False/Unknown.
           Predicates: is_zero, is_real, is_imaginary, is_rational,
           is_integer, is_algebraic, equal, lt, le, gt, ge
           (equal/lt/le/gt/ge take two expressions)

  factor "<expr>"
           Print the multiplicative factorization of a rational/integer
           result (trial division up to the smooth limit; see convert.Factor).

  repl     Read expressions from stdin, one per line, print their
           enclosure and decimal expansion until EOF.

Grammar: + - * / ^(integer) unary-, parentheses, integer literals, and
the identifiers pi, e, i, sqrt(x), exp(x), log(x), sin/cos/tan(x),
asin/acos/atan(x), gamma(x), erf/erfc/erfi(x), zeta(x), ellipk/ellipe(x),
ellippi(n,m), tetranacci(n), tribonacci(n).`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "eval":
		cmdEval(os.Args[2:])
	case "check":
		cmdCheck(os.Args[2:])
	case "factor":
		cmdFactor(os.Args[2:])
	case "repl":
		cmdRepl(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	prec := fs.Uint("prec", 256, "working precision in bits")
	digits := fs.Int("digits", 20, "decimal digits to print")
	fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatalf("eval requires an expression argument")
	}
	c := context.NewDefault()
	x, err := parseExpr(c, fs.Arg(0))
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}
	printValue(x, *prec, *digits)
}

func printValue(x *ca.Ca, prec uint, digits int) {
	fmt.Printf("value:    %s\n", x.String())
	fmt.Printf("decimal:  %s\n", convert.ToDecimalString(x, digits))
	b := convert.ToBall(x, prec)
	fmt.Printf("ball:     re=%s±%s  im=%s±%s\n", b.ReMid.Text('g', 12), b.ReRad.Text('g', 6), b.ImMid.Text('g', 12), b.ImRad.Text('g', 6))
}

func cmdCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 2 {
		log.Fatalf("check requires a predicate name and at least one expression")
	}
	pred := rest[0]
	c := context.NewDefault()
	x, err := parseExpr(c, rest[1])
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}

	var result truth.Value
	switch pred {
	case "is_zero":
		result = predicate.CheckIsZero(x)
	case "is_real":
		result = predicate.CheckIsReal(x)
	case "is_imaginary":
		result = predicate.CheckIsImaginary(x)
	case "is_rational":
		result = predicate.CheckIsRational(x)
	case "is_integer":
		result = predicate.CheckIsInteger(x)
	case "is_algebraic":
		result = predicate.CheckIsAlgebraic(x)
	case "equal", "lt", "le", "gt", "ge":
		if len(rest) < 3 {
			log.Fatalf("%s requires two expressions", pred)
		}
		y, err := parseExpr(c, rest[2])
		if err != nil {
			log.Fatalf("parse error: %v", err)
		}
		switch pred {
		case "equal":
			result = predicate.CheckEqual(x, y)
		case "lt":
			result = predicate.CheckLt(x, y)
		case "le":
			result = predicate.CheckLe(x, y)
		case "gt":
			result = predicate.CheckGt(x, y)
		case "ge":
			result = predicate.CheckGe(x, y)
		}
	default:
		log.Fatalf("unknown predicate %q", pred)
	}
	fmt.Println(result)
}

func cmdFactor(args []string) {
	fs := flag.NewFlagSet("factor", flag.ExitOnError)
	full := fs.Bool("full", false, "use the full trial-division bound instead of the smooth limit")
	fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatalf("factor requires an expression argument")
	}
	c := context.NewDefault()
	x, err := parseExpr(c, fs.Arg(0))
	if err != nil {
		log.Fatalf("parse error: %v", err)
	}
	flags := convert.ZZSmooth
	if *full {
		flags = convert.ZZFull
	}
	fs2 := convert.Factor(x, flags)
	parts := make([]string, 0, len(fs2))
	for _, f := range fs2 {
		parts = append(parts, fmt.Sprintf("%s^%d", f.Base.String(), f.Exp))
	}
	fmt.Println(strings.Join(parts, " * "))
}

func cmdRepl(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	prec := fs.Uint("prec", 256, "working precision in bits")
	digits := fs.Int("digits", 20, "decimal digits to print")
	fs.Parse(args)

	c := context.NewDefault()
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		x, err := parseExpr(c, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			continue
		}
		printValue(x, *prec, *digits)
	}
}

// --- expression grammar -----------------------------------------------
//
// expr  := term (('+'|'-') term)*
// term  := power (('*'|'/') power)*
// power := unary ('^' integer)?
// unary := '-' unary | atom
// atom  := integer | ident | ident '(' expr (',' expr)* ')' | '(' expr ')'

type parser struct {
	c    *context.Context
	toks []string
	pos  int
}

func parseExpr(c *context.Context, s string) (*ca.Ca, error) {
	p := &parser{c: c, toks: tokenize(s)}
	v, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing input at %q", strings.Join(p.toks[p.pos:], " "))
	}
	return v, nil
}

func tokenize(s string) []string {
	var toks []string
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case strings.ContainsRune("+-*/^(),", rune(ch)):
			toks = append(toks, string(ch))
			i++
		case ch >= '0' && ch <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		default:
			j := i
			for j < len(s) && (isAlpha(s[j]) || s[j] >= '0' && s[j] <= '9' || s[j] == '_') {
				j++
			}
			if j == i {
				j = i + 1
			}
			toks = append(toks, s[i:j])
			i = j
		}
	}
	return toks
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseSum() (*ca.Ca, error) {
	v, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek() == "+" || p.peek() == "-" {
		op := p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			v = ca.Add(v, rhs)
		} else {
			v = ca.Sub(v, rhs)
		}
	}
	return v, nil
}

func (p *parser) parseTerm() (*ca.Ca, error) {
	v, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.peek() == "*" || p.peek() == "/" {
		op := p.next()
		rhs, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			v = ca.Mul(v, rhs)
		} else {
			v = ca.Div(v, rhs)
		}
	}
	return v, nil
}

func (p *parser) parsePower() (*ca.Ca, error) {
	v, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek() == "^" {
		p.next()
		tok := p.next()
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("expected integer exponent, got %q", tok)
		}
		v = ca.Pow(v, n)
	}
	return v, nil
}

func (p *parser) parseUnary() (*ca.Ca, error) {
	if p.peek() == "-" {
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ca.Neg(v), nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*ca.Ca, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of input")
	case tok == "(":
		p.next()
		v, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("expected ')'")
		}
		p.next()
		return v, nil
	case tok[0] >= '0' && tok[0] <= '9':
		p.next()
		n := new(big.Int)
		if _, ok := n.SetString(tok, 10); !ok {
			return nil, fmt.Errorf("invalid integer literal %q", tok)
		}
		return ca.FromRat(p.c, new(big.Rat).SetInt(n)), nil
	case isAlpha(tok[0]):
		p.next()
		if p.peek() == "(" {
			return p.parseCall(tok)
		}
		return p.parseIdent(tok)
	default:
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
}

func (p *parser) parseIdent(name string) (*ca.Ca, error) {
	switch name {
	case "pi":
		return transcendental.Pi(p.c), nil
	case "e":
		return transcendental.Euler(p.c), nil
	case "i":
		return ca.I(p.c), nil
	default:
		return nil, fmt.Errorf("unknown identifier %q", name)
	}
}

func (p *parser) parseCall(name string) (*ca.Ca, error) {
	p.next() // consume '('
	var args []*ca.Ca
	if p.peek() != ")" {
		for {
			a, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek() == "," {
				p.next()
				continue
			}
			break
		}
	}
	if p.peek() != ")" {
		return nil, fmt.Errorf("expected ')' after arguments to %q", name)
	}
	p.next()

	arity1 := func(f func(*context.Context, *ca.Ca) *ca.Ca) (*ca.Ca, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes exactly one argument", name)
		}
		return f(p.c, args[0]), nil
	}

	switch name {
	case "sqrt":
		return arity1(transcendental.Sqrt)
	case "exp":
		return arity1(transcendental.Exp)
	case "log":
		return arity1(transcendental.Log)
	case "sin":
		return arity1(transcendental.Sin)
	case "cos":
		return arity1(transcendental.Cos)
	case "tan":
		return arity1(transcendental.Tan)
	case "asin":
		return arity1(transcendental.Asin)
	case "acos":
		return arity1(transcendental.Acos)
	case "atan":
		return arity1(transcendental.Atan)
	case "gamma":
		return arity1(transcendental.Gamma)
	case "erf":
		return arity1(transcendental.Erf)
	case "erfc":
		return arity1(transcendental.Erfc)
	case "erfi":
		return arity1(transcendental.Erfi)
	case "zeta":
		return arity1(transcendental.RiemannZeta)
	case "ellipk":
		return arity1(transcendental.EllipticK)
	case "ellipe":
		return arity1(transcendental.EllipticE)
	case "tetranacci":
		return arity1(transcendental.Tetranacci)
	case "tribonacci":
		return arity1(transcendental.Tribonacci)
	case "ellippi":
		if len(args) != 2 {
			return nil, fmt.Errorf("ellippi takes exactly two arguments")
		}
		return transcendental.EllipticPi(p.c, args[0], args[1]), nil
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}
