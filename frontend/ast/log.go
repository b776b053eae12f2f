package ast

import (
	"log/slog"
)

// Slog wraps a Type as a slog.LogValuer to not render type strings
// unless they definitely need to be logged
func Slog(t Type) slog.LogValuer {
	return typeLogValuer{t}
}

type typeLogValuer struct{ Type }

func (l typeLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", TypeString(l.Type)),
		slog.String("kind", l.Describe()),
		slog.String("pos", RangeOf(l).String()),
	)
}
