package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/itohio/godice/pkg/dice"
	"github.com/itohio/godice/pkg/touch"
)

// noPort is the serial port option that selects mouse input.
const noPort = "(mouse)"

// showSettingsDialog edits the configuration and saves it. Changes apply
// on the next start.
func showSettingsDialog(state *appState) {
	tabs := container.NewAppTabs(
		createTouchTab(state),
		createTimingTab(state),
		createDisplayTab(state),
	)

	content := container.NewBorder(nil, nil, nil, nil, tabs)
	d := dialog.NewCustomConfirm("Settings", "Save", "Close", content, func(save bool) {
		if !save {
			return
		}
		if err := state.cfg.Save(state.cfgPath); err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		state.log.Infof("Configuration saved to %s", state.cfgPath)
		dialog.ShowInformation("Settings", "Saved. Restart the simulator to apply.", state.window)
	}, state.window)
	d.Resize(fyne.NewSize(480, 360))
	d.Show()
}

// createTouchTab creates the Touch configuration tab.
func createTouchTab(state *appState) *container.TabItem {
	ports, err := touch.Ports()
	portOptions := []string{noPort}
	portMap := map[string]string{noPort: ""}
	if err != nil {
		state.log.Warnf("%v", err)
	}
	for _, port := range ports {
		displayName := port.Name
		if port.Description != "" && port.Description != port.Name {
			displayName = fmt.Sprintf("%s (%s)", port.Name, port.Description)
		}
		portOptions = append(portOptions, displayName)
		portMap[displayName] = port.Name
	}

	// Keep a configured port that is not plugged in right now
	current := noPort
	if state.cfg.Touch.SerialPort != "" {
		current = state.cfg.Touch.SerialPort
		for name, port := range portMap {
			if port == state.cfg.Touch.SerialPort {
				current = name
			}
		}
		if _, ok := portMap[current]; !ok {
			portOptions = append(portOptions, current)
			portMap[current] = current
		}
	}

	portSelect := widget.NewSelect(portOptions, func(selected string) {
		state.cfg.Touch.SerialPort = portMap[selected]
	})
	portSelect.SetSelected(current)

	dedup := widget.NewCheck("Treat a repeated press as one", func(v bool) {
		state.cfg.Touch.DedupRepeats = v
	})
	dedup.SetChecked(state.cfg.Touch.DedupRepeats)

	form := widget.NewForm(
		widget.NewFormItem("Serial port", portSelect),
		widget.NewFormItem("Repeats", dedup),
	)
	return container.NewTabItem("Touch", form)
}

// createTimingTab creates the Timing configuration tab.
func createTimingTab(state *appState) *container.TabItem {
	tick := durationEntry(&state.cfg.Timing.Tick)
	blink := durationEntry(&state.cfg.Timing.Blink)
	hold := durationEntry(&state.cfg.Timing.Hold)

	nonBlocking := widget.NewCheck("Keep polling touch while rolling", func(v bool) {
		state.cfg.Loop.NonBlocking = v
	})
	nonBlocking.SetChecked(state.cfg.Loop.NonBlocking)

	var labels []string
	for _, k := range dice.Kinds() {
		labels = append(labels, k.String())
	}
	initial := widget.NewSelect(labels, func(v string) {
		state.cfg.Dice.Initial = v
	})
	initial.SetSelected(state.cfg.Dice.Initial)

	form := widget.NewForm(
		widget.NewFormItem("Initial die", initial),
		widget.NewFormItem("Tick", tick),
		widget.NewFormItem("Blink", blink),
		widget.NewFormItem("Hold", hold),
		widget.NewFormItem("Loop", nonBlocking),
	)
	return container.NewTabItem("Timing", form)
}

// createDisplayTab creates the Display configuration tab.
func createDisplayTab(state *appState) *container.TabItem {
	zones := widget.NewCheck("Paint touch zones", func(v bool) {
		state.cfg.Simulator.ShowZones = v
	})
	zones.SetChecked(state.cfg.Simulator.ShowZones)

	level := widget.NewSelect([]string{"debug", "info", "warn", "error", "none"}, func(v string) {
		state.cfg.Log.Level = v
	})
	level.SetSelected(state.cfg.Log.Level)

	form := widget.NewForm(
		widget.NewFormItem("Overlay", zones),
		widget.NewFormItem("Log level", level),
	)
	return container.NewTabItem("Display", form)
}

// durationEntry edits a duration in place. Invalid input is ignored.
func durationEntry(d *time.Duration) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(d.String())
	e.OnChanged = func(s string) {
		v, err := time.ParseDuration(s)
		if err != nil || v <= 0 {
			return
		}
		*d = v
	}
	return e
}
