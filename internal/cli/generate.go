package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/keldric/stargen/internal/stargen"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more star systems",
		Run:   runGenerate,
	}

	cmd.Flags().Int64P("seed", "s", 0, "Integer seed for reproducible output")
	cmd.Flags().String("seed-text", "", "Text seed, hashed to an integer seed")
	cmd.Flags().IntP("count", "c", 1, "Number of systems to generate")
	cmd.Flags().Bool("open-cluster", false, "Generate inside an open star cluster")
	cmd.Flags().Bool("garden", false, "Guarantee a garden world in the system")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	seedText, _ := cmd.Flags().GetString("seed-text")
	count, _ := cmd.Flags().GetInt("count")
	openCluster, _ := cmd.Flags().GetBool("open-cluster")
	garden, _ := cmd.Flags().GetBool("garden")

	var seed *int64
	if cmd.Flags().Changed("seed") {
		v, _ := cmd.Flags().GetInt64("seed")
		seed = &v
	}

	if count < 1 {
		exitErr("generate", fmt.Errorf("count must be at least 1, got %d", count))
	}

	tables, err := loadTables()
	if err != nil {
		exitErr("load tables", err)
	}

	for i := 0; i < count; i++ {
		sys, err := stargen.Generate(stargen.Options{
			Seed:                 offsetSeed(seed, int64(i)),
			SeedText:             offsetSeedText(seedText, i),
			IsInOpenCluster:      openCluster,
			GuaranteeGardenWorld: garden,
			Tables:               tables,
		})
		if err != nil {
			exitErr("generate", err)
		}

		if formatFlag == "text" {
			printSystemText(sys)
		} else {
			b, _ := json.MarshalIndent(sys, "", "  ")
			fmt.Println(string(b))
		}
	}
}

// offsetSeed keeps multi-system runs reproducible without repeating the
// same system count times.
func offsetSeed(seed *int64, i int64) *int64 {
	if seed == nil {
		return nil
	}
	v := *seed + i
	return &v
}

func offsetSeedText(seedText string, i int) string {
	if seedText == "" || i == 0 {
		return seedText
	}
	return fmt.Sprintf("%s#%d", seedText, i)
}

func printSystemText(sys *stargen.StarSystem) {
	fmt.Printf("System %s (%d star", sys.ID, sys.NumberOfStars)
	if sys.NumberOfStars != 1 {
		fmt.Print("s")
	}
	fmt.Println(")")

	for i, star := range sys.Stars {
		label := fmt.Sprintf("Star %c", 'A'+i)
		spectral := "white dwarf"
		if star.SpectralType != nil {
			spectral = *star.SpectralType
		}
		fmt.Printf("  %s: %s %s, %.2f solar masses, %.1f Gyr, luminosity %.4f\n",
			label, spectral, star.Sequence, star.Mass, star.Age, star.Luminosity)
		fmt.Printf("    snow line %.2f AU, gas giants: %s\n", star.SnowLineRadius, star.Arrangement)

		for _, slot := range sys.Orbits[i] {
			fmt.Printf("    %7.2f AU  %s", slot.Radius, slot.Content)
			if p := slot.Planet; p != nil {
				fmt.Printf(": %s", describePlanet(p))
			}
			fmt.Println()
		}
	}

	for _, comp := range sys.Companions {
		fmt.Printf("  Star %c orbit: %s separation, %.2f AU, eccentricity %.2f\n",
			'A'+comp.StarIndex, comp.Separation, comp.SemiMajorAxis, comp.Eccentricity)
	}
	for _, zone := range sys.ForbiddenZones {
		fmt.Printf("  Forbidden zone: %.2f to %.2f AU\n", zone.Inner, zone.Outer)
	}
	fmt.Println()
}

func describePlanet(p *stargen.Planet) string {
	var b strings.Builder

	if p.Kind == stargen.KindGasGiant {
		fmt.Fprintf(&b, "%s gas giant, %.0f Earth masses", strings.ToLower(string(p.GiantSize)), p.Mass)
	} else {
		fmt.Fprintf(&b, "%s %s", strings.ToLower(string(p.Size)), p.Type)
		if p.Surface != nil {
			fmt.Fprintf(&b, ", %s, %.0f K", p.Surface.Climate, p.Surface.SurfaceTemperature)
		}
	}

	if n := len(p.MajorMoons); n == 1 {
		b.WriteString(", 1 moon")
	} else if n > 1 {
		fmt.Fprintf(&b, ", %d moons", n)
	}
	return b.String()
}
