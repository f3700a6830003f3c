package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/32bitkid/swdraw"
	"github.com/32bitkid/swdraw/screen"
)

var errScript = errors.New("bad script")

// A step is one line of a draw script.
type step struct {
	op    string
	ints  []int
	scale float32
	text  string
}

// arity is the number of integer arguments each op takes before its
// optional trailing argument.
var arity = map[string]int{
	"clear":   1,
	"char":    3,
	"string":  2,
	"alt":     2,
	"pic":     2,
	"stretch": 4,
	"tile":    4,
	"fill":    5,
	"fade":    0,
}

// parseScript reads one command per line:
//
//	clear COLOR
//	char X Y CODE [SCALE]
//	string X Y SCALE TEXT
//	alt X Y SCALE TEXT
//	pic X Y NAME [SCALE]
//	stretch X Y W H NAME
//	tile X Y W H NAME
//	fill X Y W H COLOR
//	fade
//
// Blank lines and lines starting with # are ignored. TEXT is the rest of
// the line, or a Go quoted string.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		st, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		steps = append(steps, st)
	}
	return steps, s.Err()
}

func parseStep(line string) (step, error) {
	op, rest := cut(line)
	n, ok := arity[op]
	if !ok {
		return step{}, fmt.Errorf("%w: unknown command %q", errScript, op)
	}

	st := step{op: op, scale: 1}
	for i := 0; i < n; i++ {
		var word string
		word, rest = cut(rest)
		v, err := strconv.Atoi(word)
		if err != nil {
			return step{}, fmt.Errorf("%w: %s: argument %d: %v", errScript, op, i+1, err)
		}
		st.ints = append(st.ints, v)
	}

	switch op {
	case "char":
		if rest != "" {
			return st, st.parseScale(rest)
		}
	case "string", "alt":
		word, text := cut(rest)
		if err := st.parseScale(word); err != nil {
			return step{}, err
		}
		if strings.HasPrefix(text, `"`) {
			u, err := strconv.Unquote(text)
			if err != nil {
				return step{}, fmt.Errorf("%w: %s: %v", errScript, op, err)
			}
			text = u
		}
		st.text = text
	case "pic":
		var word string
		st.text, word = cut(rest)
		if st.text == "" {
			return step{}, fmt.Errorf("%w: pic: missing name", errScript)
		}
		if word != "" {
			return st, st.parseScale(word)
		}
	case "stretch", "tile":
		if rest == "" {
			return step{}, fmt.Errorf("%w: %s: missing name", errScript, op)
		}
		st.text = rest
	default:
		if rest != "" {
			return step{}, fmt.Errorf("%w: %s: unexpected %q", errScript, op, rest)
		}
	}
	return st, nil
}

func (st *step) parseScale(word string) error {
	f, err := strconv.ParseFloat(word, 32)
	if err != nil {
		return fmt.Errorf("%w: %s: scale: %v", errScript, st.op, err)
	}
	st.scale = float32(f)
	return nil
}

// cut splits off the first space separated word of s.
func cut(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func (st step) run(c *swdraw.Compositor, surface *screen.Buffer) {
	a := st.ints
	switch st.op {
	case "clear":
		c.Fill(0, 0, surface.Width(), surface.Height(), uint8(a[0]))
	case "char":
		c.DrawCharScaled(a[0], a[1], a[2], st.scale)
	case "string":
		c.DrawString(a[0], a[1], st.text, st.scale, false)
	case "alt":
		c.DrawString(a[0], a[1], st.text, st.scale, true)
	case "pic":
		c.DrawPictureScaled(a[0], a[1], st.text, st.scale)
	case "stretch":
		c.StretchPicture(a[0], a[1], a[2], a[3], st.text)
	case "tile":
		c.TileClear(a[0], a[1], a[2], a[3], st.text)
	case "fill":
		c.Fill(a[0], a[1], a[2], a[3], uint8(a[4]))
	case "fade":
		c.FadeScreen()
	}
}
