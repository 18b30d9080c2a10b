package command

import (
	"fmt"
	"slices"
	"strings"
)

// ChoiceValue is a [pflag.Value] that only accepts one of a fixed set of strings.
type ChoiceValue struct {
	value   string
	def     string
	choices []string
}

// NewChoiceValue returns a ChoiceValue set to def. An empty def leaves the flag unset.
func NewChoiceValue(def string, choices []string) *ChoiceValue {
	return &ChoiceValue{value: def, def: def, choices: slices.Clone(choices)}
}

func (c *ChoiceValue) String() string { return c.value }

func (c *ChoiceValue) Type() string { return "choice" }

// Choices returns the accepted values.
func (c *ChoiceValue) Choices() []string { return slices.Clone(c.choices) }

func (c *ChoiceValue) Set(s string) error {
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("must be one of %s", quoteAll(c.choices))
	}
	c.value = s
	return nil
}

func (c *ChoiceValue) reset() {
	c.value = c.def
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
