package climax

import "github.com/gookit/color"

// styler colors help labels and handler output. It is owned by one invocation; enabled is
// decided from the terminal first and refined once the config store is open.
type styler struct {
	enabled bool
}

var styles = map[string]color.Color{
	"label":  color.Magenta,
	"accent": color.Cyan,
	"error":  color.Red,
}

func (s *styler) apply(name, text string) string {
	if s == nil || !s.enabled || text == "" {
		return text
	}
	c, ok := styles[name]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

func (s *styler) label(text string) string {
	return s.apply("label", text)
}
