package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/brkpt/display"
)

var (
	inspectWidth  int
	inspectHeight int
	inspectIdent  string
	inspectJSON   bool
	inspectLast   bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Classify a viewport size once and print the result",
	Long: "Classifies the current terminal size, an explicit --width/--height,\n" +
		"or (with --last-size) the size recorded by the previous run. Without\n" +
		"a terminal and without explicit dimensions the classification is\n" +
		"headless: width stays 0 and mobile falls back to platform flags.",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		env, err := inspectEnv()
		if err != nil {
			return err
		}

		d := display.New(env, cfg.DisplayOptions())
		defer d.Close()

		// Registered so anything downstream can reach the shared display.
		display.SetDefault(d)
		defer display.ResetDefault()

		d, err = display.Default()
		if err != nil {
			return err
		}

		s := d.State()
		if inspectJSON {
			data, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		printState(s)
		return nil
	},
}

func init() {
	inspectCmd.Flags().IntVar(&inspectWidth, "width", -1, "Viewport width to classify")
	inspectCmd.Flags().IntVar(&inspectHeight, "height", -1, "Viewport height to classify")
	inspectCmd.Flags().StringVar(&inspectIdent, "ident", "", "Identification string for platform detection")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the state as JSON")
	inspectCmd.Flags().BoolVar(&inspectLast, "last-size", false, "Use the last size recorded in the database")
}

func inspectEnv() (display.Environment, error) {
	switch {
	case inspectWidth >= 0:
		h := inspectHeight
		if h < 0 {
			h = 0
		}
		return display.Fixed(inspectWidth, h, inspectIdent), nil

	case inspectLast:
		st, err := openStore()
		if err != nil {
			return nil, err
		}
		defer st.Close()
		size, found, err := st.LastSize()
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("no recorded size; run the dashboard first")
		}
		return display.Fixed(size.Width, size.Height, inspectIdent), nil

	case inspectIdent != "":
		return display.Headless(inspectIdent), nil

	default:
		return display.Term(), nil
	}
}

func printState(s display.State) {
	fmt.Printf("size      %d × %d\n", s.Width, s.Height)
	fmt.Printf("bucket    %s\n", s.Name)

	var cum []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"smAndDown", s.SMAndDown}, {"smAndUp", s.SMAndUp},
		{"mdAndDown", s.MDAndDown}, {"mdAndUp", s.MDAndUp},
		{"lgAndDown", s.LGAndDown}, {"lgAndUp", s.LGAndUp},
	} {
		if f.on {
			cum = append(cum, f.name)
		}
	}
	fmt.Printf("flags     %s\n", strings.Join(cum, " "))

	if s.Mobile {
		fmt.Printf("mobile    yes (cutoff %d)\n", s.MobileBreakpoint)
	} else {
		fmt.Printf("mobile    no (cutoff %d)\n", s.MobileBreakpoint)
	}

	fmt.Printf("platform  %s\n", platformTokens(s.Platform))
	fmt.Printf("bounds    xs:%d sm:%d md:%d lg:%d\n",
		s.Thresholds.XS, s.Thresholds.SM, s.Thresholds.MD, s.Thresholds.LG)
}

func platformTokens(p display.Platform) string {
	var set []string
	for _, tk := range []struct {
		name string
		on   bool
	}{
		{"win", p.Win}, {"mac", p.Mac}, {"linux", p.Linux},
		{"android", p.Android}, {"ios", p.IOS},
		{"chrome", p.Chrome}, {"edge", p.Edge}, {"firefox", p.Firefox}, {"opera", p.Opera},
		{"cordova", p.Cordova}, {"electron", p.Electron},
		{"touch", p.Touch}, {"ssr", p.SSR},
	} {
		if tk.on {
			set = append(set, tk.name)
		}
	}
	if len(set) == 0 {
		return "(none)"
	}
	return strings.Join(set, " ")
}
