package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ReadValues parses numbers separated by whitespace or commas. Text after
// '#' on a line is ignored.
func ReadValues(r io.Reader) ([]float64, error) {
	var values []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ';' || unicode.IsSpace(c)
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q", line, f)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
