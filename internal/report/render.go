package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/es-debug/nginx-log-analyzer/internal/domain"
	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	statusBarWidth = 50
	methodBarWidth = 45
	hourlyBarWidth = 40

	pathDisplayLimit = 40
	ellipsis         = "..."

	solidBar  = "█"
	shadedBar = "▓"

	minSectionWidth = 69
	minAddressWidth = 15
)

// sectionBodyBorder opens onto the title block above it.
var sectionBodyBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "├",
	TopRight:    "┤",
	BottomLeft:  "└",
	BottomRight: "┘",
}

type Option func(*Renderer)

// WithColorProfile overrides the colour profile detected from the writer.
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(profile)
	}
}

// Renderer turns an aggregated Summary into text reports. It holds no state
// derived from a Summary, so rendering the same Summary twice gives the same text.
type Renderer struct {
	lg      *lipgloss.Renderer
	printer *message.Printer

	banner lipgloss.Style
	head   lipgloss.Style
	body   lipgloss.Style
}

// New creates a Renderer whose styling matches the terminal behind w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		lg:      lipgloss.NewRenderer(w),
		printer: message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.banner = newBannerStyle(r.lg)
	r.head = r.lg.NewStyle().
		Border(lipgloss.NormalBorder(), true, true, false, true).
		Foreground(lipgloss.Color("#FFD700")).
		Align(lipgloss.Center)
	r.body = r.lg.NewStyle().
		Border(sectionBodyBorder)

	return r
}

// Render writes every report for s in a fixed order: overview, status codes,
// methods, top addresses, top paths and hourly traffic.
func (r *Renderer) Render(s *domain.Summary) string {
	sections := []string{
		r.Overview(s),
		r.StatusCodes(s),
		r.Methods(s),
		r.TopAddresses(s),
		r.TopPaths(s),
		r.Hourly(s),
	}

	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString("\n")
		sb.WriteString(section)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *Renderer) Overview(s *domain.Summary) string {
	rows := []string{
		fmt.Sprintf("  Total Requests:     %10s", r.number(s.TotalRequests)),
		fmt.Sprintf("  Unique IPs:         %10s", r.number(s.UniqueAddresses)),
		fmt.Sprintf("  Unique Paths:       %10s", r.number(s.UniquePaths)),
	}

	if s.ResponseSizes > 0 {
		rows = append(rows,
			fmt.Sprintf("  Avg Response Size:  %10s", FormatBytes(s.AvgResponseSize)),
			fmt.Sprintf("  Total Data Sent:    %10s", FormatBytes(float64(s.TotalResponseSize))),
		)
	}

	return r.section("TRAFFIC OVERVIEW", rows)
}

func (r *Renderer) StatusCodes(s *domain.Summary) string {
	const title = "STATUS CODE DISTRIBUTION"

	if len(s.Statuses) == 0 {
		return r.section(title, []string{"  No status codes found"})
	}

	maxCount := 0
	for _, st := range s.Statuses {
		maxCount = max(maxCount, st.Quantity)
	}

	rows := make([]string, 0, len(s.Statuses))
	for _, st := range s.Statuses {
		rows = append(rows, fmt.Sprintf("  %s %-12s │ %-50s │ %6d (%5.1f%%)",
			st.Code,
			StatusLabel(st.Code),
			bar(solidBar, st.Quantity, maxCount, statusBarWidth),
			st.Quantity,
			percent(st.Quantity, s.TotalRequests),
		))
	}

	return r.section(title, rows)
}

func (r *Renderer) Methods(s *domain.Summary) string {
	const title = "HTTP METHOD DISTRIBUTION"

	if len(s.Methods) == 0 {
		return r.section(title, []string{"  No HTTP methods found"})
	}

	maxCount := 0
	for _, m := range s.Methods {
		maxCount = max(maxCount, m.Quantity)
	}

	rows := make([]string, 0, len(s.Methods))
	for _, m := range s.Methods {
		rows = append(rows, fmt.Sprintf("  %-7s │ %-45s │ %6d (%4.1f%%)",
			m.Name,
			bar(solidBar, m.Quantity, maxCount, methodBarWidth),
			m.Quantity,
			percent(m.Quantity, s.TotalRequests),
		))
	}

	return r.section(title, rows)
}

func (r *Renderer) TopAddresses(s *domain.Summary) string {
	title := fmt.Sprintf("TOP %d IP ADDRESSES", s.AddressLimit)

	if len(s.Addresses) == 0 {
		return r.section(title, []string{"  No IP addresses found"})
	}

	nameWidth := minAddressWidth
	for _, a := range s.Addresses {
		nameWidth = max(nameWidth, lipgloss.Width(a.Name))
	}

	rows := make([]string, 0, len(s.Addresses))
	for i, a := range s.Addresses {
		rows = append(rows, fmt.Sprintf("  %2d. %-*s │ %8d requests (%5.1f%%)",
			i+1,
			nameWidth,
			a.Name,
			a.Quantity,
			percent(a.Quantity, s.TotalRequests),
		))
	}

	return r.section(title, rows)
}

func (r *Renderer) TopPaths(s *domain.Summary) string {
	title := fmt.Sprintf("TOP %d REQUESTED PATHS", s.URLLimit)

	if len(s.URLs) == 0 {
		return r.section(title, []string{"  No paths found"})
	}

	rows := make([]string, 0, len(s.URLs))
	for i, u := range s.URLs {
		rows = append(rows, fmt.Sprintf("  %2d. %-43s │ %6d (%4.1f%%)",
			i+1,
			TruncatePath(u.Name),
			u.Quantity,
			percent(u.Quantity, s.TotalRequests),
		))
	}

	return r.section(title, rows)
}

func (r *Renderer) Hourly(s *domain.Summary) string {
	const title = "HOURLY TRAFFIC DISTRIBUTION"

	if s.HourlyTotal() == 0 {
		return r.section(title, []string{"  No hourly data available"})
	}

	maxCount := 0
	for _, c := range s.Hourly {
		maxCount = max(maxCount, c)
	}

	rows := make([]string, 0, domain.HoursPerDay)
	for hour, c := range s.Hourly {
		rows = append(rows, fmt.Sprintf("  %2d:00 │ %-40s │ %6d",
			hour,
			bar(shadedBar, c, maxCount, hourlyBarWidth),
			c,
		))
	}

	return r.section(title, rows)
}

// TruncatePath shortens long paths for display only.
func TruncatePath(path string) string {
	runes := []rune(path)
	if len(runes) <= pathDisplayLimit {
		return path
	}

	return string(runes[:pathDisplayLimit]) + ellipsis
}

// BarLength is floor(count / maxCount * width).
func BarLength(count, maxCount, width int) int {
	if maxCount <= 0 || count <= 0 {
		return 0
	}

	return count * width / maxCount
}

func bar(glyph string, count, maxCount, width int) string {
	return strings.Repeat(glyph, BarLength(count, maxCount, width))
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(count) / float64(total) * 100
}

func (r *Renderer) number(n int) string {
	return r.printer.Sprintf("%d", n)
}

func (r *Renderer) section(title string, rows []string) string {
	width := max(minSectionWidth, lipgloss.Width(title)+4)
	for _, row := range rows {
		width = max(width, lipgloss.Width(row)+2)
	}

	head := r.head.Width(width).Render(title)
	body := r.body.Width(width).Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, head, body)
}
