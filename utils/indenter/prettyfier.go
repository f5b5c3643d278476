package indenter

import "strings"

// indenter accumulates a nested, indented rendering. Nested strings that
// span multiple lines are re-indented to the nesting level.
type indenter struct {
	buf string
}

func Indenter() indenter {
	return indenter{}
}

func (i indenter) Start(str string) indenter {
	i.buf = str
	return i
}

// NestSep places every string on its own indented line, separated by sep.
// A single string is kept inline.
func (i indenter) NestSep(sep string, strs ...string) indenter {
	if len(strs) == 0 {
		return i
	}
	if len(strs) == 1 {
		i.buf += strs[0]
		return i
	}

	const pad = "  "
	for idx, str := range strs {
		i.buf += "\n" + pad + strings.ReplaceAll(str, "\n", "\n"+pad)
		if idx < len(strs)-1 {
			i.buf += sep
		}
	}
	i.buf += "\n"
	return i
}

func (i indenter) End(str string) string {
	return i.buf + str
}
