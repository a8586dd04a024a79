// SPDX-License-Identifier: MIT

// Package demo walks through every Square operation and prints the results.
// It is a caller of the public matrix API only.
package demo

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/squaremat/internal/config"
	"github.com/katalvlaran/squaremat/matrix"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))
)

// printer accumulates the first write error so the walkthrough reads linearly.
type printer struct {
	w     io.Writer
	opts  []matrix.RenderOption
	color bool
	err   error
}

func newPrinter(w io.Writer, cfg *config.Config) *printer {
	opts := []matrix.RenderOption{
		matrix.WithDelimiter(cfg.Render.Delimiter),
		matrix.WithPrecision(cfg.Render.Precision),
	}
	if cfg.Render.Brackets {
		opts = append(opts, matrix.WithRowBrackets())
	}

	return &printer{w: w, opts: opts, color: cfg.Style.Color}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}

	return s.Render(text)
}

func (p *printer) heading(text string) {
	p.printf("\n%s\n", p.style(headingStyle, text))
}

func (p *printer) label(text string) {
	p.printf("%s\n", p.style(labelStyle, text))
}

func (p *printer) matrix(m *matrix.Square) {
	p.printf("%s", matrix.Render(m, p.opts...))
}

func (p *printer) value(name string, v any) {
	p.printf("%s %s\n", p.style(labelStyle, name), p.style(valueStyle, fmt.Sprint(v)))
}

// Run prints the full operator walkthrough for cfg to w.
// Any matrix error aborts the walkthrough and is returned wrapped with the step name.
func Run(w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	left, err := matrix.NewFromRows(cfg.Operands.Left)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	right, err := matrix.NewFromRows(cfg.Operands.Right)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	special, err := matrix.NewFromRows(cfg.Operands.Special)
	if err != nil {
		return fmt.Errorf("special operand: %w", err)
	}

	p := newPrinter(w, cfg)
	steps := []struct {
		name string
		fn   func(*printer) error
	}{
		{"operands", func(p *printer) error {
			p.heading("Operands")
			p.label("left:")
			p.matrix(left)
			p.label("right:")
			p.matrix(right)
			p.label("special:")
			p.matrix(special)
			return nil
		}},
		{"binary", func(p *printer) error { return binarySteps(p, left, right) }},
		{"scalar", func(p *printer) error { return scalarSteps(p, cfg, left) }},
		{"structural", func(p *printer) error { return structuralSteps(p, cfg, left, special) }},
		{"compound", func(p *printer) error { return compoundSteps(p, cfg, right, special) }},
		{"compare", func(p *printer) error {
			p.heading("Comparison of left and right (by element sum)")
			p.value("left == right:", matrix.Equal(left, right))
			p.value("left != right:", matrix.NotEqual(left, right))
			p.value("left <  right:", matrix.Less(left, right))
			p.value("left >  right:", matrix.Greater(left, right))
			p.value("left <= right:", matrix.LessOrEqual(left, right))
			p.value("left >= right:", matrix.GreaterOrEqual(left, right))
			d, err := matrix.Det(special)
			if err != nil {
				return err
			}
			p.value("\nDeterminant of special:", d)
			return nil
		}},
	}
	for _, s := range steps {
		if err := s.fn(p); err != nil {
			return fmt.Errorf("demo %s: %w", s.name, err)
		}
		if p.err != nil {
			return p.err
		}
	}

	return nil
}

func binarySteps(p *printer, left, right *matrix.Square) error {
	ops := []struct {
		title string
		fn    func(a, b *matrix.Square) (*matrix.Square, error)
	}{
		{"Sum (left + right)", matrix.Add},
		{"Difference (left - right)", matrix.Sub},
		{"Product (left * right)", matrix.Mul},
		{"Element-wise product (left % right)", matrix.Hadamard},
	}
	for _, op := range ops {
		res, err := op.fn(left, right)
		if err != nil {
			return err
		}
		p.heading(op.title)
		p.matrix(res)
	}
	d, err := matrix.Det(left)
	if err != nil {
		return err
	}
	p.value("\nDeterminant of left:", d)

	return nil
}

func scalarSteps(p *printer, cfg *config.Config, left *matrix.Square) error {
	scaled, err := matrix.Scale(left, cfg.Scalar)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Scalar multiplication (left * %g)", cfg.Scalar))
	p.matrix(scaled)

	scaledL, err := matrix.ScaleLeft(cfg.LeftScale, left)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Scalar multiplication (%g * left)", cfg.LeftScale))
	p.matrix(scaledL)

	div, err := matrix.DivScalar(left, cfg.Scalar)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Scalar division (left / %g)", cfg.Scalar))
	p.matrix(div)

	mod, err := matrix.ModScalar(left, cfg.Modulus)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Scalar modulo (left %% %d)", cfg.Modulus))
	p.matrix(mod)

	return nil
}

func structuralSteps(p *printer, cfg *config.Config, left, special *matrix.Square) error {
	neg, err := matrix.Negate(left)
	if err != nil {
		return err
	}
	p.heading("Unary minus (-left)")
	p.matrix(neg)

	tr, err := matrix.Transpose(left)
	if err != nil {
		return err
	}
	p.heading("Transpose (~left)")
	p.matrix(tr)

	pow, err := matrix.Pow(left, cfg.Power)
	if err != nil {
		return err
	}
	p.heading(fmt.Sprintf("Power (left ^ %d)", cfg.Power))
	p.matrix(pow)

	// left stays incremented for the comparisons; post-increment runs on a copy.
	p.heading("Pre-increment (++left)")
	p.matrix(left.Inc())

	work := left.Clone()
	p.heading("Post-increment (copy of left++)")
	p.label("before:")
	p.matrix(work)
	p.label("result:")
	p.matrix(work.PostInc())
	p.label("after:")
	p.matrix(work)

	p.heading("Pre-decrement (--special)")
	p.matrix(special.Dec())

	p.heading("Post-decrement (special--)")
	p.label("before:")
	p.matrix(special)
	p.label("result:")
	p.matrix(special.PostDec())
	p.label("after:")
	p.matrix(special)

	return nil
}

func compoundSteps(p *printer, cfg *config.Config, right, special *matrix.Square) error {
	acc, err := matrix.ZerosLike(right)
	if err != nil {
		return err
	}
	if _, err = acc.Assign(right); err != nil {
		return err
	}
	p.heading("Compound assignment (starting from a copy of right)")
	p.matrix(acc)

	steps := []struct {
		title string
		fn    func() (*matrix.Square, error)
	}{
		{"acc += special", func() (*matrix.Square, error) { return acc.AddInPlace(special) }},
		{"acc -= special", func() (*matrix.Square, error) { return acc.SubInPlace(special) }},
		{"acc *= special", func() (*matrix.Square, error) { return acc.MulInPlace(special) }},
		{fmt.Sprintf("acc /= %g", cfg.Scalar), func() (*matrix.Square, error) { return acc.DivInPlace(cfg.Scalar) }},
		{fmt.Sprintf("acc %%= %d", cfg.Modulus), func() (*matrix.Square, error) { return acc.ModInPlace(cfg.Modulus) }},
		{"acc %= special (element-wise)", func() (*matrix.Square, error) { return acc.HadamardInPlace(special) }},
	}
	for _, s := range steps {
		res, err := s.fn()
		if err != nil {
			return err
		}
		p.label("after " + s.title + ":")
		p.matrix(res)
	}

	return nil
}
