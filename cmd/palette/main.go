// Package main provides a tool to preview the card palette and terminal color support.
package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// cardPalette mirrors the default deal palette.
var cardPalette = []struct {
	name string
	hex  string
}{
	{"Pink", "#ff7eb6"},
	{"Sky", "#82cfff"},
	{"Green", "#42be65"},
	{"Peach", "#ffab91"},
	{"Violet", "#be95ff"},
	{"Gold", "#f1c21b"},
}

func main() {
	fmt.Println("=== CARD PALETTE ===")
	displayCardPalette()

	fmt.Println("\n\n=== ANSI 256 FALLBACK ===")
	display256Colors()
}

func displayCardPalette() {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers("Name", "Hex", "Border", "Fill").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
			}
			return lipgloss.NewStyle()
		})

	for _, c := range cardPalette {
		border := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.hex)).
			Padding(0, 1).
			Render("card")
		fill := lipgloss.NewStyle().
			Background(lipgloss.Color(c.hex)).
			Foreground(lipgloss.Color("0")).
			Padding(0, 2).
			Render(c.hex)
		t.Row(c.name, c.hex, border, fill)
	}
	fmt.Println(t.Render())
}

func display256Colors() {
	fmt.Println("Standard 16 Colors:")
	displayColorBlock(0, 15, 8)

	fmt.Println("\nGrayscale (232-255):")
	displayColorBlock(232, 255, 12)
}

func displayColorBlock(start, end, perRow int) {
	count := 0
	for i := start; i <= end; i++ {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(strconv.Itoa(i))).
			Foreground(getContrastColor(i)).
			Width(6).
			Align(lipgloss.Center)
		fmt.Print(style.Render(fmt.Sprintf("%3d", i)))

		count++
		if count%perRow == 0 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	if count%perRow != 0 {
		fmt.Println()
	}
}

// getContrastColor picks a readable foreground for a background color index.
func getContrastColor(colorIndex int) lipgloss.Color {
	switch {
	case colorIndex < 16:
		if colorIndex == 0 || colorIndex == 1 || colorIndex == 4 || colorIndex == 5 || colorIndex == 8 {
			return lipgloss.Color("15")
		}
		return lipgloss.Color("0")
	case colorIndex >= 232:
		if colorIndex < 244 {
			return lipgloss.Color("15")
		}
		return lipgloss.Color("0")
	default:
		return lipgloss.Color("15")
	}
}
