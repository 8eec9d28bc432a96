package pysource

import (
	"regexp"
	"strings"
)

var (
	importRe = regexp.MustCompile(`^import\s+(.+)$`)
	fromRe   = regexp.MustCompile(`^from\s+(\.*[\w.]*)\s+import\s+(.+)$`)
	nameRe   = regexp.MustCompile(`^[A-Za-z_][\w.]*$`)
)

// parseImports extracts the raw import names of a source file in statement order.
// "import a.b as c" yields a.b, "from x import y" yields x.y and relative
// "from . import y" yields y. Star imports yield the module itself.
// Deeper relative imports keep their leading dots: "from ..x import y" yields ..x.y.
func parseImports(lines []string) []string {
	stmts := statements(lines)
	var out []string

	for i := 0; i < len(stmts); i++ {
		stmt := stmts[i]

		if m := importRe.FindStringSubmatch(stmt); m != nil {
			out = append(out, splitNames(m[1])...)
			continue
		}

		m := fromRe.FindStringSubmatch(stmt)
		if m == nil {
			continue
		}

		names := m[2]
		if strings.HasPrefix(names, "(") {
			for !strings.Contains(names, ")") && i+1 < len(stmts) {
				i++
				names += " " + stmts[i]
			}
			names = strings.Trim(names, "()")
		}

		module := strings.TrimLeft(m[1], ".")
		dots := ""
		if level := len(m[1]) - len(module); level > 1 {
			dots = strings.Repeat(".", level)
		}
		for _, n := range splitNames(names) {
			switch {
			case n == "*":
				if module != "" {
					out = append(out, dots+module)
				}
			case module == "":
				out = append(out, dots+n)
			default:
				out = append(out, dots+module+"."+n)
			}
		}
	}

	return out
}

// statements turns physical lines into simple statements. Comments are dropped,
// backslash continuations are joined and ";" separates statements sharing a line.
func statements(lines []string) []string {
	var out []string
	var pending string

	flush := func(line string) {
		for _, s := range strings.Split(line, ";") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	for _, raw := range lines {
		line := stripComment(raw)
		if head, ok := strings.CutSuffix(line, "\\"); ok {
			pending += head + " "
			continue
		}
		flush(pending + line)
		pending = ""
	}
	flush(pending)

	return out
}

// splitNames splits a comma-separated import list, dropping aliases.
func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(strings.Trim(part, "() \\"))
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if name == "*" || nameRe.MatchString(name) {
			out = append(out, name)
		}
	}
	return out
}

func stripComment(line string) string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}
