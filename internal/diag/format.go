package diag

import (
	"fmt"
	"strings"
)

// Format renders d as a one-error terminal report with a source line and a
// caret pointing at the offending column, grounded on the teacher's
// internal/errors.CompilerError.Format (same header/caret/message layout,
// adapted to operate on a diag.Diagnostic instead of its own error type).
func Format(d Diagnostic, source string, color bool) string {
	var sb strings.Builder

	if d.Pos.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", d.Severity, d.Pos.File, d.Pos.Line, d.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", d.Severity, d.Pos.Line, d.Pos.Column))
	}

	if line := sourceLine(source, d.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", d.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+d.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders every diagnostic in the bag, in report order, against
// source.
func FormatAll(b *Bag, source string, color bool) string {
	all := b.All()
	if len(all) == 0 {
		return ""
	}
	if len(all) == 1 {
		return Format(all[0], source, color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation produced %d diagnostic(s):\n\n", len(all)))
	for i, d := range all {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(all)))
		sb.WriteString(Format(d, source, color))
		if i < len(all)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
