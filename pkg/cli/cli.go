package cli

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
)

// Version is the build-time version string, overridable via
// -ldflags "-X github.com/Fepozopo/img2num/pkg/cli.Version=v1.2.3".
var Version = "dev"

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  /  - select and apply command")
	fmt.Println("  o  - open another image at runtime")
	fmt.Println("  s  - save current image (or the last rendered SVG)")
	fmt.Println("  i  - identify: print EXIF metadata for the current image")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

func RunCLI() {
	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	store := NewMetaStoreFromStdimg(Commands)

	var cur image.Image
	var lastSVG string
	var currentImagePath string
	var currentFormat string
	if inputImagePath != "" {
		img, format, err := LoadImage(inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		cur = img
		currentImagePath = inputImagePath
		currentFormat = format
		_ = PreviewImage(cur, currentFormat)
		if info, ierr := GetImageInfoImage(cur); ierr == nil {
			fmt.Println(info)
		}
	}

	fmt.Println("Paint-by-numbers workbench")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case '/':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first, or provide an image path as the first argument.")
				continue
			}
			commandName := promptForCommand(store)
			if commandName == "" {
				continue
			}

			c, ok := store.byName[commandName]
			if !ok {
				fmt.Printf("unknown command: %s\n", commandName)
				continue
			}

			tooltip, _, _ := store.GetCommandHelp(commandName)
			fmt.Println("\n" + tooltip + "\n")
			rawArgs := make([]string, len(c.Args))
			for i, p := range c.Args {
				typeLabel := p.Type
				if p.Type == "enum" && p.Description != "" {
					typeLabel = fmt.Sprintf("enum(%s)", p.Description)
				}
				prompt := fmt.Sprintf("%s (%s)", p.Name, typeLabel)
				if p.Default != "" {
					prompt += fmt.Sprintf(" [default %s]", p.Default)
				}
				prompt += ": "
				val, perr := PromptLine(prompt)
				if perr != nil {
					fmt.Fprintf(os.Stderr, "input error: %v\n", perr)
					val = ""
				}
				if val == "" {
					val = p.Default
				}
				rawArgs[i] = val
			}

			normArgs, err := NormalizeArgsFromStd(store, commandName, rawArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "input validation error: %v\n", err)
				fmt.Println("aborting command due to input errors")
				continue
			}

			result, err := ApplyCommand(cur, commandName, normArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "apply command error: %v\n", err)
				continue
			}
			if result.SVG != "" {
				lastSVG = result.SVG
				fmt.Printf("Applied %s; rendered %d bytes of SVG (press 's' to save)\n", commandName, len(lastSVG))
				continue
			}
			cur = result.Image
			fmt.Printf("Applied %s\n", commandName)
			_ = PreviewImage(cur, currentFormat)
			if info, ierr := GetImageInfoImage(cur); ierr == nil {
				fmt.Println(info)
			}
			continue

		case 's':
			prompt := "Enter output filename: "
			if currentImagePath != "" {
				prompt = fmt.Sprintf("Enter output filename [default %s]: ", currentImagePath)
			}
			out, _ := PromptLine(prompt)
			if out == "" {
				out = currentImagePath
			}
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			if strings.HasSuffix(strings.ToLower(out), ".svg") && lastSVG != "" {
				if err := os.WriteFile(out, []byte(lastSVG), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "failed to write svg: %v\n", err)
					continue
				}
				fmt.Printf("Saved SVG to %s\n", out)
				continue
			}
			if cur == nil {
				fmt.Println("no image loaded to save")
				continue
			}
			if err := SaveImage(out, cur); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write image: %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", out)

		case 'o':
			selected, selErr := SelectFileWithFzf(".")
			var newPath string
			if selErr != nil || selected == "" {
				newPath, _ = PromptLine("Enter path to image to open (leave empty to cancel): ")
				if newPath == "" {
					fmt.Println("open cancelled")
					continue
				}
			} else {
				newPath = selected
			}

			img, format, err := LoadImage(newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", newPath, err)
				continue
			}
			cur = img
			currentImagePath = newPath
			currentFormat = format
			fmt.Printf("Opened %s\n", newPath)
			_ = PreviewImage(cur, currentFormat)
			if info, ierr := GetImageInfoImage(cur); ierr == nil {
				fmt.Println(info)
			}
			continue

		case 'i':
			if currentImagePath == "" {
				fmt.Println("No image loaded. Press 'o' to open an image first, or provide an image path as the first argument.")
				continue
			}
			printEXIFSummary(currentImagePath)
			continue

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}
			continue

		case 'h':
			usage()
			continue

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys
		}
	}
}

// promptForCommand asks the user (via fzf if available, else a numbered
// textual list) which CommandSpec to run next.
func promptForCommand(store *StdMetaStore) string {
	name, err := SelectCommandWithFzfStd(Commands)
	if err == nil && name != "" {
		return name
	}

	fmt.Println("Command selection (fallback):")
	for i, c := range Commands {
		fmt.Printf("  %d) %s - %s\n", i+1, c.Name, c.Description)
	}
	selection, _ := PromptLine("Enter number or command name (leave empty to cancel): ")
	if selection == "" {
		fmt.Println("selection cancelled")
		return ""
	}
	if idx, perr := strconv.Atoi(selection); perr == nil {
		if idx < 1 || idx > len(Commands) {
			fmt.Println("invalid selection")
			return ""
		}
		return Commands[idx-1].Name
	}

	selLower := strings.ToLower(selection)
	for _, c := range Commands {
		if strings.ToLower(c.Name) == selLower {
			return c.Name
		}
	}
	var matches []string
	for _, c := range Commands {
		if strings.HasPrefix(strings.ToLower(c.Name), selLower) {
			matches = append(matches, c.Name)
		}
	}
	if len(matches) == 1 {
		return matches[0]
	}
	if len(matches) > 1 {
		fmt.Println("ambiguous selection, candidates:")
		for _, m := range matches {
			fmt.Println("  " + m)
		}
		return ""
	}
	fmt.Printf("unknown command: %s\n", selection)
	return ""
}
