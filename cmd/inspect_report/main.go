// Command inspect_report prints the stored report the way the broker reveal
// panel shows it: what the user sees next to what was packaged for sale.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"soulful-home-be/internal/config"
	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/internal/repository/implementation"
	storeFactory "soulful-home-be/pkg/docstore/factory"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := storeFactory.NewStore(ctx, storeFactory.Options{
		Driver:      cfg.Store.Driver,
		Dir:         cfg.Store.Dir,
		RedisURL:    cfg.Store.RedisURL,
		RedisPrefix: cfg.Store.RedisPrefix,
		PostgresDSN: cfg.Store.Connection,
	})
	if err != nil {
		log.Fatalf("Error: Failed to open store: %v", err)
	}
	defer store.Close()

	report, err := implementation.NewReportRepository(store).FindLatest(ctx)
	if errors.Is(err, contract.ErrNotFound) {
		color.Yellow("No report has been generated yet.")
		os.Exit(0)
	}
	if err != nil {
		color.Red("Failed to read report: %v", err)
		os.Exit(1)
	}

	printUserView(report.UserReports)
	printBrokerView(report.UserReports.InternalReport)
	printMatches("INSPIRATIONS", report.SearchResults.Inspirations, color.New(color.FgGreen))
	printMatches("LEAST MATCHES", report.SearchResults.LeastMatches, color.New(color.FgRed))
}

func printUserView(r entity.UserReports) {
	color.Cyan("\n🏡 %s", r.HomeArchetype)
	fmt.Println(r.PersonaCopy)

	color.Cyan("\n🔖 Style Tags")
	field("Aesthetic Style", r.StyleTags.AestheticStyle)
	field("Material & Texture", r.StyleTags.MaterialTexture)
	field("Lighting & Mood", r.StyleTags.LightingMood)
	field("Room Typology", r.StyleTags.RoomTypology)
	field("Emotional Imagery", r.StyleTags.EmotionalImagery)
	field("Persona cues", r.StyleTags.PersonaCues)
}

func printBrokerView(r entity.InternalReport) {
	color.Magenta("\n📦 Internal Report (packaged for marketers)")
	field("Aesthetic Style", r.AestheticStyle)
	field("Emotional Tone", r.EmotionalTone)
	field("Behavioral Habit", r.BehavioralHabit)
	field("Trend Orientation", r.TargetAdCopy.TrendOrientation)
	field("Ad Resistance", r.TargetAdCopy.AdResistance)
	field("Tone", r.TargetAdCopy.Tone)
	field("Packaged For", r.PackagedFor)
}

func printMatches(title string, matches []entity.Match, c *color.Color) {
	c.Printf("\n%s\n", title)
	for i, m := range matches {
		fmt.Printf("  %d. %-40s %.3f  %s\n", i+1, m.ImagePath, m.RelevanceScore, m.Description)
	}
}

func field(label string, value entity.FlexText) {
	if value.String() == "" {
		return
	}
	fmt.Printf("  %s %s\n", color.New(color.Bold).Sprint(label+":"), value.String())
}
