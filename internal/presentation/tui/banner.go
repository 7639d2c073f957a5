package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for FlowForge.
func PrintBanner() {
	p := termenv.ColorProfile()
	s1 := termenv.String(`  ______ _                 ______                  `).Foreground(p.Color("#818cf8"))
	s2 := termenv.String(` |  ____| |               |  ____|                 `).Foreground(p.Color("#a78bfa"))
	s3 := termenv.String(` | |__  | | _____      __ | |__ ___  _ __ __ _  ___`).Foreground(p.Color("#c084fc"))
	s4 := termenv.String(` |  __| | |/ _ \ \ /\ / / |  __/ _ \| '__/ _' |/ _ \`).Foreground(p.Color("#e879f9"))
	s5 := termenv.String(` | |    | | (_) \ V  V /  | | | (_) | | | (_| |  __/`).Foreground(p.Color("#f472b6"))
	s6 := termenv.String(` |_|    |_|\___/ \_/\_/   |_|  \___/|_|  \__, |\___|`).Foreground(p.Color("#fb7185"))
	s7 := termenv.String(`                                          __/ |     `).Foreground(p.Color("#fb7185"))
	s8 := termenv.String(`                                         |___/      `).Foreground(p.Color("#fb7185"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println(s7)
	fmt.Println(s8)
	fmt.Println()
}
