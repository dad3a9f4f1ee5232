package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	trkStyle = lipgloss.NewStyle().Faint(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+path)
}

func TrkLine(w io.Writer, path string) {
	fmt.Fprintln(w, trkStyle.Render("trk")+"  "+path)
}

func ErrLine(w io.Writer, path string, err error) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+path+": "+err.Error())
}

func TestLine(w io.Writer, id int64, summary string) {
	fmt.Fprintf(w, "  #%d %s\n", id, summary)
}

func SummaryLine(w io.Writer, files, tests int) {
	fmt.Fprintf(w, "scanned %d files, %d tests\n", files, tests)
}

func ListRow(w io.Writer, id int64, fileName, testcase, prose string, idWidth, fileWidth, tcWidth int) {
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s\n", idWidth, fmt.Sprintf("#%d", id), fileWidth, fileName, tcWidth, testcase, prose)
}
