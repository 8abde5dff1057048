package service

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/templui/fittrack/internal/markdown"
	"github.com/templui/fittrack/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	narrativeDir = "content/ai"
	tipsDir      = "content/tips"
)

// Note is one markdown file from the content directory.
type Note struct {
	Slug        string
	Title       string
	Description string
	Heading     string
	Link        string
	LinkText    string
	Color       string
	Order       int
	HTML        string
}

// ContentService serves the markdown notes attached to generated plans and
// the tips shown on the dashboard.
type ContentService struct {
	fsys       fs.FS
	parser     *markdown.Parser
	narratives map[string]*Note
	tips       []*Note
}

func NewContentService(fsys fs.FS) *ContentService {
	return &ContentService{
		fsys:       fsys,
		parser:     markdown.NewParser(),
		narratives: make(map[string]*Note),
	}
}

func (s *ContentService) Load() error {
	narratives, err := s.loadDir(narrativeDir)
	if err != nil {
		return err
	}
	for _, n := range narratives {
		s.narratives[n.Slug] = n
	}

	tips, err := s.loadDir(tipsDir)
	if err != nil {
		return err
	}
	sort.SliceStable(tips, func(i, j int) bool {
		return tips[i].Order < tips[j].Order
	})
	s.tips = tips

	return nil
}

func (s *ContentService) loadDir(dir string) ([]*Note, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	notes := []*Note{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".md")
		note, err := s.loadNote(path.Join(dir, entry.Name()), slug)
		if err != nil {
			return nil, fmt.Errorf("failed to load note %s: %w", slug, err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (s *ContentService) loadNote(file, slug string) (*Note, error) {
	content, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title := metaString(meta, "title")
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	order, _ := meta["order"].(int)

	return &Note{
		Slug:        slug,
		Title:       title,
		Description: metaString(meta, "description"),
		Heading:     metaString(meta, "heading"),
		Link:        metaString(meta, "link"),
		LinkText:    metaString(meta, "link_text"),
		Color:       metaString(meta, "color"),
		Order:       order,
		HTML:        string(html),
	}, nil
}

func metaString(meta map[string]any, key string) string {
	v, _ := meta[key].(string)
	return v
}

// Narrative returns the named note as a result narrative. Unknown slugs
// yield an empty narrative.
func (s *ContentService) Narrative(slug string) model.Narrative {
	n, ok := s.narratives[slug]
	if !ok {
		return model.Narrative{}
	}
	return model.Narrative{Title: n.Title, HTML: n.HTML}
}

func (s *ContentService) Tips() []*Note {
	return s.tips
}
