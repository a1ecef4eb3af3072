package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"foodiefy/recommender"
)

const logDebounceInterval = 150 * time.Millisecond

type uiState struct {
	service *recommender.Service

	w           fyne.Window
	localitySel *widget.Select
	cuisineSel  *widget.Select
	findBtn     *widget.Button
	status      *widget.Label
	results     *fyne.Container
	log         *widget.Entry

	statusBind  binding.String
	logBind     binding.String
	logLines    []string
	logMu       sync.Mutex
	logUpdateCh chan struct{}
}

func buildUI(a fyne.App, svc *recommender.Service) *uiState {
	u := &uiState{service: svc}
	u.w = a.NewWindow("Foodiefy: Restaurant Recommender")

	u.statusBind = binding.NewString()
	_ = u.statusBind.Set("Select options from the sidebar to begin your foodie journey!")
	u.logBind = binding.NewString()
	u.startLogUpdater()

	u.localitySel = widget.NewSelect(withAny(svc.Localities()), nil)
	u.localitySel.SetSelected(recommender.Any)
	u.cuisineSel = widget.NewSelect(withAny(svc.CuisineOptions()), nil)
	u.cuisineSel.SetSelected(recommender.Any)

	u.findBtn = widget.NewButtonWithIcon("Find Restaurants", theme.SearchIcon(), func() { u.onFind() })

	u.status = widget.NewLabelWithData(u.statusBind)
	u.status.Wrapping = fyne.TextWrapWord

	u.log = widget.NewEntryWithData(u.logBind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetPlaceHolder("activity log")
	u.log.Disable()

	u.results = container.NewVBox()

	sidebar := container.NewVBox(
		widget.NewLabelWithStyle("Filter Restaurants", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Locality"),
		u.localitySel,
		widget.NewLabel("Cuisine"),
		u.cuisineSel,
		u.findBtn,
		widget.NewSeparator(),
		u.status,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewMax(u.log),
	)

	right := container.NewVScroll(u.results)
	split := container.NewHSplit(sidebar, right)
	split.Offset = 0.3

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1024, 720))

	if err := svc.DataErr(); err != nil {
		u.setStatus(fmt.Sprintf("Data file problem: %v", err))
		u.appendLog(err.Error())
	}
	return u
}

func withAny(options []string) []string {
	return append([]string{recommender.Any}, options...)
}

func (u *uiState) onFind() {
	criteria := recommender.FilterCriteria{
		Locality: u.localitySel.Selected,
		Cuisine:  u.cuisineSel.Selected,
	}
	u.setBusy(true)
	u.setStatus("Finding the best spots for you...")
	go func() {
		result, err := u.service.Recommend(criteria)
		fyne.Do(func() {
			defer u.setBusy(false)
			if err != nil {
				u.results.RemoveAll()
				u.results.Refresh()
				if errors.Is(err, recommender.ErrNoMatch) {
					u.setStatus("No restaurants found matching your criteria. Please try something else!")
				} else {
					u.setStatus(fmt.Sprintf("Query failed: %v", err))
				}
				u.appendLog(fmt.Sprintf("locality=%q cuisine=%q: %v", criteria.Locality, criteria.Cuisine, err))
				return
			}
			u.setStatus(fmt.Sprintf("Found %d matching restaurants.", result.Matches))
			u.appendLog(fmt.Sprintf("locality=%q cuisine=%q: %d matches, %d recommendations",
				criteria.Locality, criteria.Cuisine, result.Matches, len(result.Recommendations)))
			u.renderResult(result)
		})
	}()
}

func (u *uiState) renderResult(result recommender.Result) {
	u.results.RemoveAll()
	u.results.Add(widget.NewLabelWithStyle(
		fmt.Sprintf("Similar to %s:", result.Seed.Name),
		fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, rec := range result.Recommendations {
		u.results.Add(recommendationCard(rec))
	}
	u.results.Refresh()
}

func recommendationCard(rec recommender.Recommendation) fyne.CanvasObject {
	r := rec.Restaurant
	details := widget.NewLabel(fmt.Sprintf("Address: %s\nCuisine: %s\nRating: %.1f   Votes: %d",
		r.Address, r.Cuisines, r.Rating, r.Votes))
	details.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(details)
	if mapURL, err := url.Parse(rec.MapURL); err == nil {
		content.Add(widget.NewHyperlink("See on Google Maps", mapURL))
	}
	return widget.NewCard(r.Name, r.Locality, content)
}

func (u *uiState) setBusy(b bool) {
	fyne.Do(func() {
		if b {
			u.findBtn.Disable()
		} else {
			u.findBtn.Enable()
		}
	})
}

func (u *uiState) setStatus(text string) {
	_ = u.statusBind.Set(text)
}

func (u *uiState) appendLog(msg string) {
	now := time.Now().Format("15:04:05")
	line := fmt.Sprintf("[%s] %s", now, msg)

	u.logMu.Lock()
	u.logLines = append(u.logLines, line)
	if len(u.logLines) > 200 {
		u.logLines = u.logLines[len(u.logLines)-200:]
	}
	u.logMu.Unlock()

	if u.logUpdateCh == nil {
		u.flushLog()
		return
	}
	select {
	case u.logUpdateCh <- struct{}{}:
	default:
	}
}

func (u *uiState) startLogUpdater() {
	if u.logUpdateCh != nil {
		return
	}
	u.logUpdateCh = make(chan struct{}, 1)
	go u.logUpdateLoop()
}

func (u *uiState) logUpdateLoop() {
	timer := time.NewTimer(logDebounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-u.logUpdateCh:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(logDebounceInterval)
		case <-timer.C:
			u.flushLog()
		}
	}
}

func (u *uiState) flushLog() {
	u.logMu.Lock()
	text := strings.Join(u.logLines, "\n")
	u.logMu.Unlock()
	_ = u.logBind.Set(text)
}
