package brick

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// RenderResult lists output files relative to the output directory.
type RenderResult struct {
	Written []string
	Skipped []string
}

var funcs = template.FuncMap{
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"snakeCase":  snakeCase,
	"pascalCase": pascalCase,
	"camelCase": func(s string) string {
		r, size := utf8.DecodeRuneInString(pascalCase(s))
		if size == 0 {
			return ""
		}
		return string(unicode.ToLower(r)) + pascalCase(s)[size:]
	},
}

// Render renders the __brick__ tree of the brick in dir into out. File
// paths and contents are templates over data. Existing files are skipped
// unless force is set; a path rendering to an empty segment is dropped.
func Render(dir, out string, data map[string]any, force bool) (*RenderResult, error) {
	root := filepath.Join(dir, TemplateDir)
	result := &RenderResult{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		renderedRel, err := execute(rel, filepath.ToSlash(rel), data)
		if err != nil {
			return err
		}
		if hasEmptySegment(renderedRel) {
			return nil
		}
		target, err := safeJoin(out, renderedRel)
		if err != nil {
			return err
		}

		if !force {
			if _, err := os.Stat(target); err == nil {
				result.Skipped = append(result.Skipped, renderedRel)
				return nil
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rendered, err := execute(rel, string(content), data)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(rendered), info.Mode().Perm()); err != nil {
			return err
		}
		result.Written = append(result.Written, renderedRel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func execute(name, text string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return buf.String(), nil
}

func hasEmptySegment(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if strings.TrimSpace(seg) == "" {
			return true
		}
	}
	return false
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func snakeCase(s string) string {
	return strings.ToLower(strings.Join(words(s), "_"))
}

func pascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(w[size:]))
	}
	return b.String()
}
