package tui

import (
	"fmt"
	"os"
	"time"

	"rozkladctl/pkg/config"
	"rozkladctl/pkg/exporter"
	"rozkladctl/pkg/reader"
	"rozkladctl/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RunScheduleTUI runs the interactive flow for picking a timetable document,
// normalizing it and producing the requested output (preview, JSON or ICS).
func RunScheduleTUI(action string) error {
	fmt.Println(accentStyle.Render("Конвертер розкладів"))

	cfg, _ := config.Load()

	path, err := pickFile(cfg)
	if err != nil {
		return err
	}

	opts := schedule.Options{Vocabulary: schedule.FEN}
	if err := askSpecialization(&opts); err != nil {
		return err
	}

	pipeline, err := schedule.New(opts)
	if err != nil {
		return err
	}

	var records []schedule.Record
	var readErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Обробка %s...", path)).
		Action(func() {
			var rows []schedule.RawRow
			rows, readErr = reader.ReadFile(path)
			if readErr != nil {
				return
			}
			records = pipeline.Run(rows)
		}).
		Run()
	if readErr != nil {
		return fmt.Errorf("failed to read schedule: %w", readErr)
	}

	if len(records) == 0 {
		fmt.Println(errorStyle.Render("У документі не знайдено жодного запису!"))
		return nil
	}

	if cfg != nil {
		cfg.RememberFile(path)
		_ = config.Save(cfg)
	}

	switch action {
	case "json":
		return saveJSON(records, opts.DayShape)
	case "ics":
		return saveICS(records, cfg)
	}
	fmt.Println(RenderSchedule(records))
	return nil
}

func pickFile(cfg *config.AppConfig) (string, error) {
	var path string

	// offer recently used files first
	if cfg != nil && len(cfg.SavedFiles) > 0 {
		options := []huh.Option[string]{}
		for _, f := range cfg.SavedFiles {
			if _, err := os.Stat(f); err == nil {
				options = append(options, huh.NewOption(f, f))
			}
		}
		options = append(options, huh.NewOption("інший файл…", ""))
		if len(options) > 1 {
			form := huh.NewForm(huh.NewGroup(
				huh.NewSelect[string]().
					Title("Файл розкладу").
					Options(options...).
					Value(&path),
			)).WithTheme(GetTheme())
			if err := form.Run(); err != nil {
				return "", err
			}
			if path != "" {
				return path, nil
			}
		}
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewFilePicker().
			Title("Оберіть файл розкладу").
			Description("Підтримуються .xlsx, .docx та .html").
			AllowedTypes([]string{".xlsx", ".docx", ".html", ".htm", ".doc"}).
			Value(&path),
	)).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return path, nil
}

func askSpecialization(opts *schedule.Options) error {
	options := []huh.Option[string]{huh.NewOption("увесь розклад", "")}
	for _, code := range opts.Vocabulary.Codes() {
		options = append(options, huh.NewOption(code, code))
	}

	var spec string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Спеціалізація (ФЕН)").
			Description("Залиште «увесь розклад», щоб не фільтрувати.").
			Options(options...).
			Value(&spec),
	)).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}
	if spec != "" {
		opts.FENMode = true
		opts.Spec = spec
	}
	return nil
}

func saveJSON(records []schedule.Record, shape schedule.DayShape) error {
	out, err := askOutputPath("data.json")
	if err != nil {
		return err
	}
	nested := schedule.Nest(records,
		[]string{schedule.FieldCourse, schedule.FieldGroup, schedule.FieldDay},
		map[string]string{
			"час":       schedule.FieldTime,
			"аудиторія": schedule.FieldHall,
			"тижні":     schedule.FieldWeeks,
		}, shape)

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := exporter.WriteJSON(file, nested); err != nil {
		return err
	}
	fmt.Printf("Збережено %d записів у %s\n", len(records), out)
	return nil
}

func saveICS(records []schedule.Record, cfg *config.AppConfig) error {
	start := ""
	if cfg != nil {
		start = cfg.SemesterStart
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Понеділок першого тижня (YYYY-MM-DD)").
			Value(&start).
			Validate(func(s string) error {
				_, err := time.Parse("2006-01-02", s)
				return err
			}),
	)).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}
	semesterStart, err := time.Parse("2006-01-02", start)
	if err != nil {
		return err
	}

	out, err := askOutputPath("schedule.ics")
	if err != nil {
		return err
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()
	if err := exporter.GenerateICS(records, semesterStart, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	fmt.Printf("Збережено %d записів у %s\n", len(records), out)
	return nil
}

func askOutputPath(def string) (string, error) {
	out := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Файл результату").Value(&out),
	)).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return out, nil
}

// RenderSchedule renders canonical records as a bordered terminal table.
func RenderSchedule(records []schedule.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(accentStyle).
		Headers("День", "Час", "Дисципліна", "Викладач", "Група", "Тижні", "Ауд.")
	for _, rec := range records {
		t.Row(rec.Day, rec.Time, rec.Course, rec.Lecturer, rec.Group,
			schedule.FormatWeeks(rec.Weeks), rec.Hall)
	}
	return t.Render()
}
