package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
██╗  ██╗██╗  ██╗███████╗ ██████╗ ██████╗ ██████╗ ███████╗
██║  ██║██║  ██║██╔════╝██╔════╝██╔═══██╗██╔══██╗██╔════╝
███████║███████║███████╗██║     ██║   ██║██████╔╝█████╗
██╔══██║██╔══██║╚════██║██║     ██║   ██║██╔═══╝ ██╔══╝
██║  ██║██║  ██║███████║╚██████╗╚██████╔╝██║     ███████╗
╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝ ╚═════╝ ╚═════╝ ╚═╝     ╚══════╝
        salary statistics for hh.ru vacancies
`

// ColorizeText applies a random color gradient to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	strs := strings.Split(text, "")

	half := len(text) / 2
	if half == 0 {
		half = 1
	}

	var coloredText string
	for i := 0; i < len(text); i++ {
		if i < len(strs) {
			coloredText += startColor.Fade(0, float32(len(text)), float32(i%half), firstPoint).Sprint(strs[i])
		}
	}

	return coloredText
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}
