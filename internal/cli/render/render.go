// Package render draws CLI output tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/petgarden/internal/catalog"
	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/ledger"
	"github.com/julianstephens/petgarden/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFDF5")).Background(lipgloss.Color("#25A065")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	topStyle    = cellStyle.Foreground(lipgloss.Color("#F2B705")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#25A065"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Title prints a styled heading line.
func Title(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

// Muted prints a dimmed hint line.
func Muted(w io.Writer, s string) {
	fmt.Fprintln(w, mutedStyle.Render(s))
}

// PetSummary is a one-line description of a student's pet.
func PetSummary(s models.Student) string {
	if s.Pet == nil {
		return "-"
	}
	p := s.Pet
	parts := []string{fmt.Sprintf("%s the %s", p.Name, p.Type), fmt.Sprintf("Lv %d %s", p.Level, p.Stage)}
	if p.Accessory != nil {
		parts = append(parts, "wearing "+*p.Accessory)
	}
	return strings.Join(parts, ", ")
}

func Students(w io.Writer, students []models.Student) {
	t := newTable("ID", "Name", "Food", "Medals", "Pet")
	for _, s := range students {
		t.Row(s.ID, s.Name, strconv.Itoa(s.FoodCount), strconv.Itoa(s.Medals), PetSummary(s))
	}
	fmt.Fprintln(w, t)
}

// Student prints the full card of one student.
func Student(w io.Writer, s models.Student) {
	Title(w, s.Name)
	fmt.Fprintf(w, "  ID:      %s\n", s.ID)
	fmt.Fprintf(w, "  Food:    %d\n", s.FoodCount)
	fmt.Fprintf(w, "  Medals:  %d\n", s.Medals)
	if s.Pet == nil {
		Muted(w, "  No pet adopted yet.")
		return
	}
	p := s.Pet
	fmt.Fprintf(w, "  Pet:     %s (%s)\n", p.Name, p.Type)
	fmt.Fprintf(w, "  Level:   %d (%d xp, %s)\n", p.Level, p.XP, p.Stage)
	fmt.Fprintf(w, "  Image:   %s\n", p.Image)
	if p.HueRotate != nil {
		fmt.Fprintf(w, "  Color:   hue %d\n", *p.HueRotate)
	}
	if p.Accessory != nil {
		fmt.Fprintf(w, "  Wearing: %s\n", *p.Accessory)
	}
	for _, a := range p.Abilities {
		fmt.Fprintf(w, "  * %s: %s\n", a.Name, a.Description)
	}
}

func Rules(w io.Writer, rules []models.PointRule) {
	t := newTable("ID", "Label", "Value", "Type", "Icon")
	for _, r := range rules {
		t.Row(r.ID, r.Label, fmt.Sprintf("%+d", r.Value), string(r.Type), r.Icon)
	}
	fmt.Fprintln(w, t)
}

func Items(w io.Writer, items []models.ShopItem) {
	t := newTable("ID", "Name", "Type", "Price", "Stock", "Value")
	for _, it := range items {
		stock := strconv.Itoa(it.Stock)
		if it.Stock == 0 {
			stock = "sold out"
		}
		t.Row(it.ID, it.Name, string(it.Type), strconv.Itoa(it.Price), stock, it.Value)
	}
	fmt.Fprintln(w, t)
}

// Records prints growth records with their time of day.
func Records(w io.Writer, recs []models.GrowthRecord) {
	t := newTable("Time", "Student", "Type", "Description", "Change")
	for _, r := range recs {
		t.Row(r.Timestamp.Local().Format(constants.DisplayTimeFormat), r.StudentName, string(r.Type), r.Description, r.ValueChange)
	}
	fmt.Fprintln(w, t)
}

func HonorRoll(w io.Writer, roll []ledger.Standing) {
	t := newTable("#", "Student", "Medals", "Pet").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row < len(roll) && roll[row].Top:
				return topStyle
			}
			return cellStyle
		})
	for _, st := range roll {
		t.Row(strconv.Itoa(st.Rank), st.Student.Name, strconv.Itoa(st.Student.Medals), PetSummary(st.Student))
	}
	fmt.Fprintln(w, t)
}

func Breeds(w io.Writer, breeds []catalog.Breed) {
	t := newTable("Breed", "Type", "Image")
	for _, b := range breeds {
		t.Row(b.Name, string(b.Type), b.Image)
	}
	fmt.Fprintln(w, t)
}
