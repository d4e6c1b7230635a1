// Package site renders the portfolio page and serves or exports it.
package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tharindu1999/portfolio/internal/config"
	"github.com/tharindu1999/portfolio/internal/content"
	"github.com/tharindu1999/portfolio/internal/logger"
	"github.com/tharindu1999/portfolio/internal/motion"
	"github.com/tharindu1999/portfolio/internal/section"
)

var (
	ErrRender = errors.New("render page failed")
	ErrBuild  = errors.New("build site failed")
)

// MotionTables is the client-side animation contract served as motion.json.
type MotionTables struct {
	ReferenceY float64                 `json:"referenceY"`
	Hero       section.ID              `json:"hero"`
	Sections   []section.ID            `json:"sections"`
	Curves     map[string]motion.Curve `json:"curves"`
}

type navItem struct {
	ID     section.ID
	Label  string
	Anchor string
	Active bool
}

type pageData struct {
	Base       string
	ReferenceY float64
	Hero       section.ID
	LogLevel   string
	Wasm       bool
	Nav        []navItem
	P          content.Portfolio
	About      template.HTML
	Research   template.HTML
	Motion     template.JS
}

// Site holds everything needed to render the page.
type Site struct {
	cfg     *config.Config
	log     logger.Logger
	tmpl    *template.Template
	static  fs.FS
	data    pageData
	tables  MotionTables
	metrics *metrics
}

// Option configures a Site.
type Option func(*Site)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Site) { s.log = l }
}

// WithStatic replaces the embedded static assets.
func WithStatic(fsys fs.FS) Option {
	return func(s *Site) { s.static = fsys }
}

// New parses templates and pre-renders the markdown content.
func New(cfg *config.Config, p content.Portfolio, opts ...Option) (*Site, error) {
	if cfg == nil {
		cfg = config.New()
	}
	s := &Site{
		cfg:     cfg,
		log:     logger.Nop(),
		static:  staticFS(),
		metrics: newMetrics(),
	}
	for _, o := range opts {
		o(s)
	}

	hero, err := section.Parse(cfg.HeroSection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	tmpl, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: parse templates: %v", ErrRender, err)
	}
	s.tmpl = tmpl

	md := goldmark.New(goldmark.WithExtensions(extension.Typographer))
	about, err := markdown(md, p.About)
	if err != nil {
		return nil, fmt.Errorf("%w: about: %v", ErrRender, err)
	}
	research, err := markdown(md, p.Research.Summary)
	if err != nil {
		return nil, fmt.Errorf("%w: research: %v", ErrRender, err)
	}

	s.tables = MotionTables{
		ReferenceY: cfg.ReferenceY,
		Hero:       hero,
		Sections:   section.All(),
		Curves:     motion.Tables(),
	}
	tables, err := json.Marshal(s.tables)
	if err != nil {
		return nil, fmt.Errorf("%w: motion tables: %v", ErrRender, err)
	}

	nav := make([]navItem, 0, len(s.tables.Sections))
	for _, id := range s.tables.Sections {
		nav = append(nav, navItem{ID: id, Label: id.Label(), Anchor: id.Anchor(), Active: id == section.Home})
	}

	s.data = pageData{
		Base:       config.NormalizeBasePath(cfg.BasePath),
		ReferenceY: cfg.ReferenceY,
		Hero:       hero,
		LogLevel:   cfg.LogLevel,
		Wasm:       hasWasm(s.static),
		Nav:        nav,
		P:          p,
		About:      about,
		Research:   research,
		Motion:     template.JS(tables),
	}
	return s, nil
}

func markdown(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Tables returns the motion contract.
func (s *Site) Tables() MotionTables { return s.tables }

// Render writes the page.
func (s *Site) Render(w io.Writer) error {
	if err := s.tmpl.ExecuteTemplate(w, "index.html", s.data); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	s.metrics.renders.Inc()
	return nil
}
