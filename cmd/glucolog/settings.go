// ABOUTME: CLI commands for viewing and updating user settings.
// ABOUTME: Flag-driven partial updates; only flags that were set are applied.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/glucolog/internal/models"
	"github.com/spf13/cobra"
)

var (
	setUnits         string
	setNotifications bool
	setDarkMode      bool
	setEmail         string
	setFirstName     string
	setLastName      string
	setDiabetesType  string
	setHeightCm      float64
	setTargetLow     float64
	setTargetHigh    float64
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show user settings",
	Long: `Show your settings and profile.

Settings are created with defaults the first time any command needs them:
mg/dL units, notifications on, target range 70-180 mg/dL.

EXAMPLES:

  glucolog settings
  glucolog settings set --units mmol/L
  glucolog settings set --target-low 80 --target-high 170
  glucolog settings set --first-name Harper --height-cm 178`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := repo.Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Println("Settings")
		fmt.Printf("  Units          %s\n", settings.Units)
		fmt.Printf("  Target range   %s - %s\n",
			models.FormatGlucose(settings.TargetLow, settings.Units),
			models.FormatGlucose(settings.TargetHigh, settings.Units))
		fmt.Printf("  Notifications  %t\n", settings.Notifications)
		fmt.Printf("  Dark mode      %t\n", settings.DarkMode)

		bold.Println("\nProfile")
		printField("Name", settings.DisplayName())
		printField("Email", settings.Email)
		printField("Diabetes type", string(settings.DiabetesType))
		if settings.HeightCm > 0 {
			fmt.Printf("  %s %.0f cm\n", padRight("Height", 14), settings.HeightCm)
		} else {
			printField("Height", "")
		}

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update settings",
	Long: `Update settings. Only the flags you pass are changed.

Target range bounds are always given in mg/dL, regardless of display units.

EXAMPLES:

  glucolog settings set --units mmol/L
  glucolog settings set --target-low 80 --target-high 170
  glucolog settings set --diabetes-type type1
  glucolog settings set --notifications=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := func(name string) bool { return cmd.Flags().Changed(name) }

		var patch models.SettingsPatch
		if changed("units") {
			u := models.GlucoseUnits(setUnits)
			patch.Units = &u
		}
		if changed("notifications") {
			patch.Notifications = &setNotifications
		}
		if changed("dark-mode") {
			patch.DarkMode = &setDarkMode
		}
		if changed("email") {
			patch.Email = &setEmail
		}
		if changed("first-name") {
			patch.FirstName = &setFirstName
		}
		if changed("last-name") {
			patch.LastName = &setLastName
		}
		if changed("diabetes-type") {
			dt := models.DiabetesType(setDiabetesType)
			patch.DiabetesType = &dt
		}
		if changed("height-cm") {
			patch.HeightCm = &setHeightCm
		}
		if changed("target-low") {
			patch.TargetLow = &setTargetLow
		}
		if changed("target-high") {
			patch.TargetHigh = &setTargetHigh
		}

		if err := repo.UpdateSettings(patch); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}

		color.Green("✓ Settings updated")
		return nil
	},
}

func printField(name, value string) {
	if value == "" {
		value = color.New(color.Faint).Sprint("-")
	}
	fmt.Printf("  %s %s\n", padRight(name, 14), value)
}

func init() {
	settingsSetCmd.Flags().StringVar(&setUnits, "units", "", "glucose display units (mg/dL or mmol/L)")
	settingsSetCmd.Flags().BoolVar(&setNotifications, "notifications", true, "enable notifications")
	settingsSetCmd.Flags().BoolVar(&setDarkMode, "dark-mode", false, "enable dark mode")
	settingsSetCmd.Flags().StringVar(&setEmail, "email", "", "profile email")
	settingsSetCmd.Flags().StringVar(&setFirstName, "first-name", "", "profile first name")
	settingsSetCmd.Flags().StringVar(&setLastName, "last-name", "", "profile last name")
	settingsSetCmd.Flags().StringVar(&setDiabetesType, "diabetes-type", "", "diabetes type (type1, type2, gestational, prediabetes, other)")
	settingsSetCmd.Flags().Float64Var(&setHeightCm, "height-cm", 0, "height in cm")
	settingsSetCmd.Flags().Float64Var(&setTargetLow, "target-low", 0, "target range lower bound (mg/dL)")
	settingsSetCmd.Flags().Float64Var(&setTargetHigh, "target-high", 0, "target range upper bound (mg/dL)")

	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
