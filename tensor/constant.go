// SPDX-License-Identifier: MIT

package tensor

// Constant is a 0-dimensional table holding a single value.
type Constant struct {
	v float64
}

var _ MutableTable = (*Constant)(nil)

// NewConstant returns a scalar table.
func NewConstant(v float64) *Constant { return &Constant{v: v} }

func (c *Constant) Scope() []*Variable { return nil }
func (c *Constant) Size() int          { return 1 }

// Value returns the scalar.
func (c *Constant) Value() float64 { return c.v }

func (c *Constant) At(offset int) (float64, error) {
	if err := checkOffset("Constant.At", offset, 1); err != nil {
		return 0, err
	}

	return c.v, nil
}

// Get ignores every variable of inst.
func (c *Constant) Get(*Instantiation) (float64, error) { return c.v, nil }

func (c *Constant) SetAt(offset int, v float64) error {
	if err := checkOffset("Constant.SetAt", offset, 1); err != nil {
		return err
	}
	c.v = v

	return nil
}

func (c *Constant) Set(_ *Instantiation, v float64) error {
	c.v = v
	return nil
}

func (c *Constant) Fill(v float64) { c.v = v }
