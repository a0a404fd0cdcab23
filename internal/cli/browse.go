package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/openproteomics/pride/pkg/archive"
	"github.com/openproteomics/pride/pkg/errors"
	"github.com/openproteomics/pride/pkg/integrations/pride"
)

// browseOpts holds the command-line flags for the browse command.
type browseOpts struct {
	pageSize int
	refresh  bool
}

// browseCommand creates the "browse" command, an interactive pager over
// search results.
func (c *CLI) browseCommand() *cobra.Command {
	opts := browseOpts{pageSize: archive.DefaultPageSize}

	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Interactively page through search results",
		Long: `Browse search results interactively. An empty query browses all
public projects.

Keys:
  up/k, down/j   move the cursor
  n, p           next / previous page
  enter          show record details
  esc            back to the list
  q              quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return c.runBrowse(cmd, query, opts)
		},
	}

	cmd.Flags().IntVar(&opts.pageSize, "page-size", opts.pageSize, "records per page")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")

	return cmd
}

func (c *CLI) runBrowse(cmd *cobra.Command, query string, opts browseOpts) error {
	ctx := cmd.Context()
	client, cleanup := c.newArchiveClient()
	defer cleanup()

	model := newBrowseModel(ctx, client, query, opts)
	prog := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(browseModel); ok && m.err != nil {
		return fmt.Errorf("%s", errors.UserMessage(m.err))
	}
	return nil
}

// =============================================================================
// browseModel - Interactive result pager
// =============================================================================

// pageMsg carries one fetched page of results into the model.
type pageMsg struct {
	collection archive.Collection
	err        error
}

// browseModel is the bubbletea model for the browse command. The context
// is carried in the model so page fetches stop when the program is
// interrupted.
type browseModel struct {
	ctx     context.Context
	client  *pride.Client
	query   string
	refresh bool

	page     int
	pageSize int
	records  []archive.Project
	cursor   int
	loading  bool
	detail   bool
	err      error
}

func newBrowseModel(ctx context.Context, client *pride.Client, query string, opts browseOpts) browseModel {
	return browseModel{
		ctx:      ctx,
		client:   client,
		query:    query,
		refresh:  opts.refresh,
		pageSize: opts.pageSize,
		loading:  true,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.fetchPage(0)
}

func (m browseModel) fetchPage(page int) tea.Cmd {
	return func() tea.Msg {
		collection, err := m.client.Search(m.ctx, m.query, page, m.pageSize, m.refresh)
		return pageMsg{collection: collection, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.page = msg.collection.PageNumber()
		m.records = msg.collection.Records()
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			if s := msg.String(); s == "q" || s == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.detail {
				m.detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.detail && m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if !m.detail && m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "enter":
			if len(m.records) > 0 {
				m.detail = true
			}
		case "n":
			if !m.detail && len(m.records) == m.pageSize {
				m.loading = true
				return m, m.fetchPage(m.page + 1)
			}
		case "p":
			if !m.detail && m.page > 0 {
				m.loading = true
				return m, m.fetchPage(m.page - 1)
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.err != nil {
		return ""
	}
	if m.loading {
		return StyleDim.Render("Loading...") + "\n"
	}
	if m.detail {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder

	title := "All projects"
	if m.query != "" {
		title = fmt.Sprintf("Results for %q", m.query)
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ details  n/p page  q quit"))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(StyleDim.Render("  No matching projects"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, len(m.records))
	for i, row := range summaryRows(m.records) {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows[i] = append([]string{cursor}, row...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(append([]string{""}, summaryHeader()...)...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			if row == m.cursor {
				return styleTableCell.Bold(true).Foreground(colorCyan)
			}
			return styleTableCell
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  page %d · [%d/%d]", m.page, m.cursor+1, len(m.records))))
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) detailView() string {
	p := m.records[m.cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(p.Accession()) + "  " + StyleDim.Render(p.SubmissionType()))
	b.WriteString("\n\n")

	fields := [][2]string{
		{"Title", p.Title()},
		{"Published", p.PublicationDate().Format("2006-01-02")},
		{"Assays", fmt.Sprintf("%d", p.NumAssays())},
		{"Species", strings.Join(p.Species(), archive.ListSeparator)},
		{"Tissues", strings.Join(p.Tissues(), archive.ListSeparator)},
		{"PTMs", strings.Join(p.PtmNames(), archive.ListSeparator)},
		{"Instruments", strings.Join(p.InstrumentNames(), archive.ListSeparator)},
		{"Tags", strings.Join(p.Tags(), archive.ListSeparator)},
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	for _, kv := range fields {
		b.WriteString(keyStyle.Render(kv[0]) + " " + StyleValue.Render(kv[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(p.Description()))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("esc back  q quit"))
	b.WriteString("\n")
	return b.String()
}
