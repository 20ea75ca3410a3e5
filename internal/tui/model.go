// Package tui is the terminal front end of the simulator. Every state change
// goes through the simulator's operations; the model only keeps cursors and
// widgets.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
	"repse-simulator/internal/simulator"
)

var profiles = []struct {
	id    model.ProfileType
	label string
}{
	{model.ProfileContractor, "Contratista (prestador de servicios especializados)"},
	{model.ProfileBeneficiary, "Beneficiario (contratante de servicios)"},
}

var phaseTitles = map[model.Phase]string{
	model.PhaseSelection:     "Tipo de inspección",
	model.PhaseProfile:       "Perfil",
	model.PhaseIntro:         "Llegada del inspector",
	model.PhaseDocuments:     "Revisión documental",
	model.PhaseInterrogation: "Interrogatorio",
	model.PhaseVerification:  "Verificación física",
	model.PhaseResults:       "Resultados",
	model.PhaseActionPlan:    "Plan de acción",
}

// Model is the bubbletea model.
type Model struct {
	cat  *catalog.Catalog
	sim  *simulator.Simulator
	keys keyMap
	help help.Model

	company textinput.Model
	bar     progress.Model

	cursor   int
	err      error
	quitting bool
}

func New(cat *catalog.Catalog, sim *simulator.Simulator) Model {
	ti := textinput.New()
	ti.Placeholder = "Nombre de la empresa (opcional)"
	ti.CharLimit = 120
	return Model{
		cat:     cat,
		sim:     sim,
		keys:    defaultKeys(),
		help:    help.New(),
		company: ti,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Run starts the program on the terminal and waits for pending history
// writes before returning.
func Run(cat *catalog.Catalog, sim *simulator.Simulator) error {
	_, err := tea.NewProgram(New(cat, sim), tea.WithAltScreen()).Run()
	sim.Flush()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if w := msg.Width - 4; w > 10 && w < 60 {
			m.bar.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			return m.reset(), nil
		}
		if m.sim.Phase() == model.PhaseProfile {
			return m.updateProfile(msg)
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.err = nil
		switch m.sim.Phase() {
		case model.PhaseSelection:
			return m.updateSelection(msg)
		case model.PhaseIntro:
			return m.updateIntro(msg)
		case model.PhaseDocuments:
			return m.updateDocuments(msg)
		case model.PhaseInterrogation:
			return m.updateInterrogation(msg)
		case model.PhaseVerification:
			return m.updateVerification(msg)
		case model.PhaseResults:
			return m.updateResults(msg)
		case model.PhaseActionPlan:
			return m.updateActionPlan(msg)
		}
	}
	return m, nil
}

func (m Model) reset() Model {
	m.sim.Reset()
	m.cursor = 0
	m.err = nil
	m.company.Reset()
	m.company.Blur()
	return m
}

func (m *Model) move(msg tea.KeyMsg, n int) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return true
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
		return true
	}
	return false
}

func (m Model) updateSelection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := m.cat.InspectionTypes
	if m.move(msg, len(types)) || !key.Matches(msg, m.keys.Enter) || len(types) == 0 {
		return m, nil
	}
	if err := m.sim.SelectInspectionType(types[m.cursor].ID); err != nil {
		m.err = err
		return m, nil
	}
	m.cursor = 0
	return m, m.company.Focus()
}

// updateProfile lets letters reach the company name input, so only the
// arrow keys move the cursor here.
func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(profiles)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEnter:
		if name := strings.TrimSpace(m.company.Value()); name != "" {
			if err := m.sim.SetCompany(name, ""); err != nil {
				m.err = err
				return m, nil
			}
		}
		if err := m.sim.SelectProfile(profiles[m.cursor].id); err != nil {
			m.err = err
			return m, nil
		}
		m.company.Blur()
		m.cursor = 0
		m.err = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.company, cmd = m.company.Update(msg)
	return m, cmd
}

func (m Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.sim.AdvanceDialogue()
	case key.Matches(msg, m.keys.Enter):
		if m.sim.AdvanceDialogue() {
			return m, nil
		}
		if err := m.sim.StartDocumentPhase(); err != nil {
			m.err = err
		}
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateDocuments(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	docs := m.sim.RelevantDocuments()
	if m.move(msg, len(docs)) {
		return m, nil
	}
	record := func(presented, valid bool) {
		if len(docs) == 0 {
			return
		}
		m.sim.RecordDocument(docs[m.cursor].ID, presented, valid)
		if m.cursor < len(docs)-1 {
			m.cursor++
		}
	}
	switch {
	case key.Matches(msg, m.keys.Present):
		record(true, true)
	case key.Matches(msg, m.keys.Invalid):
		record(true, false)
	case key.Matches(msg, m.keys.Missing):
		record(false, false)
	case key.Matches(msg, m.keys.Enter):
		if err := m.sim.StartInterrogationPhase(); err != nil {
			m.err = err
			return m, nil
		}
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateInterrogation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := m.sim.CurrentQuestion()
	if !ok {
		return m, nil
	}
	if m.move(msg, len(q.Options)) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Skip):
		m.sim.RecordQuestionAnswer(nil)
		m.cursor = 0
	case key.Matches(msg, m.keys.Enter):
		if len(q.Options) == 0 {
			return m, nil
		}
		id := q.Options[m.cursor].ID
		if m.sim.RecordQuestionAnswer(&id) {
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) updateVerification(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	points := m.sim.RelevantVerificationPoints()
	if m.move(msg, len(points)) {
		return m, nil
	}
	record := func(status model.VerificationStatus) {
		if len(points) == 0 {
			return
		}
		m.sim.RecordVerification(points[m.cursor].ID, status)
		if m.cursor < len(points)-1 {
			m.cursor++
		}
	}
	switch {
	case key.Matches(msg, m.keys.Comply):
		record(model.StatusComplies)
	case key.Matches(msg, m.keys.NotComply):
		record(model.StatusNotComplies)
	case key.Matches(msg, m.keys.NotApply):
		record(model.StatusNotApplicable)
	case key.Matches(msg, m.keys.Enter):
		if _, err := m.sim.ShowResults(); err != nil {
			m.err = err
			return m, nil
		}
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		m.sim.AdvanceDialogue()
	case key.Matches(msg, m.keys.Enter):
		if _, err := m.sim.ShowActionPlan(); err != nil {
			m.err = err
		}
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateActionPlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.sim.ActionItems()
	if m.move(msg, len(items)) {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if len(items) > 0 {
			m.sim.ToggleActionComplete(items[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Enter):
		return m.reset(), nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Simulador de Inspección REPSE"))
	b.WriteString(" ")
	b.WriteString(subtleStyle.Render(m.header()))
	b.WriteString("\n\n")

	switch m.sim.Phase() {
	case model.PhaseSelection:
		m.viewSelection(&b)
	case model.PhaseProfile:
		m.viewProfile(&b)
	case model.PhaseIntro:
		m.viewDialogue(&b)
		b.WriteString(subtleStyle.Render("enter para continuar"))
	case model.PhaseDocuments:
		m.viewDialogue(&b)
		m.viewDocuments(&b)
	case model.PhaseInterrogation:
		m.viewInterrogation(&b)
	case model.PhaseVerification:
		m.viewDialogue(&b)
		m.viewVerification(&b)
	case model.PhaseResults:
		m.viewResults(&b)
	case model.PhaseActionPlan:
		m.viewActionPlan(&b)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	parts := []string{phaseTitles[m.sim.Phase()]}
	if cfg, ok := m.sim.InspectionConfig(); ok {
		parts = append(parts, cfg.Name)
	}
	if name, _ := m.sim.Company(); name != "" {
		parts = append(parts, name)
	}
	if d := m.sim.Elapsed(); d > 0 {
		parts = append(parts, d.Truncate(time.Second).String())
	}
	return strings.Join(parts, " · ")
}

func (m Model) viewDialogue(b *strings.Builder) {
	line, ok := m.sim.CurrentLine()
	if !ok {
		return
	}
	fmt.Fprintf(b, "%s\n", inspectorStyle.Render("Inspector: "+line))
	if !m.sim.DialogueDone() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("(%d/%d) espacio para la siguiente línea",
			m.sim.DialogueIndex()+1, len(m.sim.DialogueLines()))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m Model) viewSelection(b *strings.Builder) {
	b.WriteString("Elige el tipo de inspección a simular:\n\n")
	for i, t := range m.cat.InspectionTypes {
		fmt.Fprintf(b, "%s%s %s\n", cursor(i == m.cursor), colored(t.Color, t.Name), subtleStyle.Render(t.Subtitle))
		if i == m.cursor {
			fmt.Fprintf(b, "    %s\n    Dificultad %d/5 · %d min\n", t.Description, t.Difficulty, t.DurationMinutes)
		}
	}
}

func (m Model) viewProfile(b *strings.Builder) {
	b.WriteString("¿Cuál es tu papel en la subcontratación?\n\n")
	for i, p := range profiles {
		fmt.Fprintf(b, "%s%s\n", cursor(i == m.cursor), p.label)
	}
	b.WriteString("\n")
	b.WriteString(m.company.View())
	b.WriteString("\n")
}

func (m Model) viewDocuments(b *strings.Builder) {
	b.WriteString("El inspector solicita los siguientes documentos:\n\n")
	for i, d := range m.sim.RelevantDocuments() {
		status := subtleStyle.Render("pendiente")
		if r, ok := m.sim.DocumentResult(d.ID); ok {
			switch {
			case r.Presented && r.Valid:
				status = okStyle.Render(fmt.Sprintf("presentado %+d", r.Points))
			case r.Presented:
				status = warnStyle.Render(fmt.Sprintf("con observaciones %+d", r.Points))
			default:
				status = errorStyle.Render(fmt.Sprintf("faltante %+d", r.Points))
			}
		}
		tag := ""
		if d.Obligatory {
			tag = " *"
		}
		fmt.Fprintf(b, "%s%s%s  %s\n", cursor(i == m.cursor), d.Name, tag, status)
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("p presentado · o con observaciones · f faltante · enter continuar"))
}

func (m Model) viewInterrogation(b *strings.Builder) {
	q, ok := m.sim.CurrentQuestion()
	if !ok {
		return
	}
	total := len(m.sim.RelevantQuestions())
	fmt.Fprintf(b, "%s\n\n", subtleStyle.Render(fmt.Sprintf("Pregunta %d de %d · %s", m.sim.QuestionIndex()+1, total, q.Category)))
	fmt.Fprintf(b, "%s\n\n", inspectorStyle.Render("Inspector: "+q.Text))
	for i, o := range q.Options {
		fmt.Fprintf(b, "%s%s\n", cursor(i == m.cursor), o.Text)
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter responder · s no responder"))
}

func (m Model) viewVerification(b *strings.Builder) {
	for i, v := range m.sim.RelevantVerificationPoints() {
		status := subtleStyle.Render("pendiente")
		if r, ok := m.sim.VerificationResult(v.ID); ok {
			switch r.Status {
			case model.StatusComplies:
				status = okStyle.Render("cumple")
			case model.StatusNotComplies:
				status = errorStyle.Render("no cumple")
			default:
				status = subtleStyle.Render("no aplica")
			}
		}
		fmt.Fprintf(b, "%s%s  %s\n", cursor(i == m.cursor), v.Title, status)
		if i == m.cursor {
			fmt.Fprintf(b, "    %s\n", v.Question)
		}
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("c cumple · n no cumple · a no aplica · enter ver resultados"))
}

func (m Model) viewResults(b *strings.Builder) {
	r := m.sim.Result()
	if r == nil {
		return
	}
	m.viewDialogue(b)
	fmt.Fprintf(b, "Calificación: %s  %s\n", colored(r.Color, fmt.Sprintf("%d/100", r.Score)), colored(r.Color, r.Text))
	fmt.Fprintf(b, "%s\n\n", m.bar.ViewAs(float64(r.Score)/100))
	fmt.Fprintf(b, "Documentos: %d presentados, %d faltantes\n", r.DocumentsPresented, r.DocumentsMissing)
	fmt.Fprintf(b, "Preguntas: %d correctas, %d incorrectas, %d sin responder\n", r.QuestionsCorrect, r.QuestionsIncorrect, r.QuestionsSkipped)
	if len(r.VerificationResults) > 0 {
		fmt.Fprintf(b, "Verificación: %d cumple, %d no cumple\n", r.VerificationComplied, r.VerificationNotComplied)
	}
	if r.HasCrimeRisk {
		b.WriteString(errorStyle.Render("Riesgo de responsabilidad penal"))
		b.WriteString("\n")
	}
	if r.HasREPSECancellationRisk {
		b.WriteString(errorStyle.Render("Riesgo de cancelación del registro REPSE"))
		b.WriteString("\n")
	}
	if len(r.Infractions) > 0 {
		fmt.Fprintf(b, "\nInfracciones (%d), multa posible %s a %s %s:\n",
			len(r.Infractions), money(r.TotalFineMin), money(r.TotalFineMax), catalog.Currency)
		for _, inf := range r.Infractions {
			mark := warnStyle.Render("•")
			if inf.IsGrave {
				mark = errorStyle.Render("•")
			}
			fmt.Fprintf(b, "%s %s %s\n", mark, inf.Description, subtleStyle.Render(inf.LegalBasis))
		}
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("enter ver plan de acción"))
}

func (m Model) viewActionPlan(b *strings.Builder) {
	items := m.sim.ActionItems()
	if len(items) == 0 {
		b.WriteString(okStyle.Render("Sin acciones pendientes. Tu cumplimiento está en orden."))
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("enter nueva simulación"))
		return
	}
	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	fmt.Fprintf(b, "%d de %d acciones completadas\n\n", done, len(items))
	for i, it := range items {
		check := "[ ]"
		if it.Completed {
			check = okStyle.Render("[x]")
		}
		fmt.Fprintf(b, "%s%s %s %s\n", cursor(i == m.cursor), check, it.Title, subtleStyle.Render(string(it.Priority)))
		if i == m.cursor {
			fmt.Fprintf(b, "    %s\n", it.Description)
			for n, step := range it.Steps {
				fmt.Fprintf(b, "    %d. %s\n", n+1, step)
			}
			fmt.Fprintf(b, "    Tiempo: %s · Costo: %s", it.EstimatedTime, it.EstimatedCost)
			if it.FineAvoided != nil {
				fmt.Fprintf(b, " · Multa evitada: %s a %s", money(it.FineAvoided.Min), money(it.FineAvoided.Max))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("espacio marcar · enter nueva simulación"))
}
