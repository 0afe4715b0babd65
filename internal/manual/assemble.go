// Package manual composes rendered Markdown documents into a single
// navigable HTML manual.
package manual

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/readmanual/internal/document"
	"github.com/ziadkadry99/readmanual/internal/progress"
	"github.com/ziadkadry99/readmanual/internal/slug"
)

// FileReader reads input bytes. fstest.MapFS satisfies it.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSFiles reads from the local filesystem.
type OSFiles struct{}

func (OSFiles) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// InputKind classifies an input file by extension.
type InputKind int

const (
	InputDocument InputKind = iota
	InputStyle
	InputScript
)

// Classify returns the kind of the input at path.
func Classify(path string) (InputKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return InputDocument, nil
	case ".css":
		return InputStyle, nil
	case ".js":
		return InputScript, nil
	default:
		return 0, fmt.Errorf("%w (file %s)", ErrUnsupportedFileExtension, path)
	}
}

// Section is one input document rendered into the manual.
type Section struct {
	Path  string
	Slug  string
	Title string
	Fragments
}

// Manual is the result of one generation run.
type Manual struct {
	Name     string
	Language string
	Sections []Section
	Styles   []string
	Scripts  []string
	HTML     []byte
}

// Assembler builds a Manual from input files. The zero value reads from
// the local filesystem with a CommonMark parser and reports no progress.
type Assembler struct {
	Files    FileReader
	Parser   *document.Parser
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// NewAssembler returns an Assembler reading local files.
func NewAssembler(logger *slog.Logger, reporter progress.Reporter) *Assembler {
	return &Assembler{
		Files:    OSFiles{},
		Parser:   document.NewParser(),
		Reporter: reporter,
		Logger:   logger,
	}
}

type source struct {
	path string
	doc  *document.Node
}

// Assemble renders files, in order, into one manual titled name and
// declared in the given language. Nothing is returned unless every input
// was read and rendered successfully.
func (a *Assembler) Assemble(files []string, name, language string) (*Manual, error) {
	a.defaults()

	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}

	var docPaths, stylePaths, scriptPaths []string
	for _, path := range files {
		kind, err := Classify(path)
		if err != nil {
			return nil, err
		}
		switch kind {
		case InputDocument:
			docPaths = append(docPaths, path)
		case InputStyle:
			stylePaths = append(stylePaths, path)
		case InputScript:
			scriptPaths = append(scriptPaths, path)
		}
	}
	a.Logger.Debug("Classified inputs",
		slog.Int("documents", len(docPaths)),
		slog.Int("styles", len(stylePaths)),
		slog.Int("scripts", len(scriptPaths)))

	m := &Manual{Name: name, Language: language}
	ids := slug.New()
	// Layout ids are taken first, so a heading "Content" is anchored as content-1.
	ids.Reserve(pageIDs...)

	// Section slugs are allocated before any heading anchor so that they
	// keep their unsuffixed form whenever possible.
	sources := make([]source, 0, len(docPaths))
	for _, path := range docPaths {
		data, err := a.Files.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		doc := a.Parser.Parse(data)
		sources = append(sources, source{path: path, doc: doc})
		m.Sections = append(m.Sections, Section{
			Path:  path,
			Slug:  ids.Uniquify("section-" + filepath.Base(path)),
			Title: sectionTitle(doc, path),
		})
	}

	styles, err := a.readAll(stylePaths)
	if err != nil {
		return nil, err
	}
	scripts, err := a.readAll(scriptPaths)
	if err != nil {
		return nil, err
	}
	m.Styles, m.Scripts = styles, scripts

	a.Reporter.Start(len(sources))
	for i, src := range sources {
		section := &m.Sections[i]
		fragments, err := Compose(section.Slug, src.doc, ids)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", src.path, err)
		}
		section.Fragments = fragments
		a.Reporter.Update(i+1, src.path)
		a.Logger.Debug("Composed section",
			slog.String("path", src.path),
			slog.String("slug", section.Slug),
			slog.String("title", section.Title),
			slog.Int("headings", fragments.Headings))
	}
	a.Reporter.Finish()
	a.Logger.Debug("Allocated ids",
		slog.Int("sections", len(m.Sections)),
		slog.Int("ids", ids.Issued()))

	if m.HTML, err = renderPage(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (a *Assembler) defaults() {
	if a.Files == nil {
		a.Files = OSFiles{}
	}
	if a.Parser == nil {
		a.Parser = document.NewParser()
	}
	if a.Reporter == nil {
		a.Reporter = progress.Nop{}
	}
	if a.Logger == nil {
		a.Logger = slog.Default()
	}
}

func (a *Assembler) readAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := a.Files.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		out = append(out, string(data))
	}
	return out, nil
}

// sectionTitle uses a leading level-1 heading, or the file name.
func sectionTitle(doc *document.Node, path string) string {
	if len(doc.Children) > 0 {
		first := doc.Children[0]
		if first.Kind == document.KindHeading && first.Level == 1 {
			return document.PlainText(first)
		}
	}
	return filepath.Base(path)
}

func renderPage(m *Manual) ([]byte, error) {
	tmpl, err := template.New("manual").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{Name: m.Name, Language: m.Language, Slugs: []string{}}
	for _, s := range m.Sections {
		data.Slugs = append(data.Slugs, s.Slug)
		data.Buttons = append(data.Buttons, button{Slug: s.Slug, Title: s.Title})
		data.Navigation += template.HTML(s.Navigation)
		data.Content += template.HTML(s.Content)
	}
	for _, css := range m.Styles {
		data.Styles = append(data.Styles, template.CSS(css))
	}
	for _, js := range m.Scripts {
		data.Scripts = append(data.Scripts, template.JS(js))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}
