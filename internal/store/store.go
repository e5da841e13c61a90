package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labtrack/labtrack-backend/internal/logger"
	"github.com/labtrack/labtrack-backend/internal/types"
)

// Store is the single source of truth for all entity collections. Every
// mutator runs under the write lock, so readers always observe a complete
// snapshot; derived views are recomputed from accessor copies. Multi-writer
// coordination beyond this lock is the caller's concern.
type Store struct {
	mu  sync.RWMutex
	log *logger.Logger

	skills        []types.Skill
	occupations   []types.Occupation
	departments   []types.Department
	people        []types.Person
	competencies  []types.Competency
	evidence      []types.Evidence
	issuedBadges  []types.IssuedBadge
	openBadges    []types.OpenBadge
	pendingBadges []types.OpenBadge
	courses        []types.Course
	plans          []types.DevelopmentPlan
	externalSkills []types.ExternalSkill
	benchmarks     map[string]float64
}

func New(baseLog *logger.Logger) *Store {
	return &Store{
		log: baseLog.With("component", "Store"),
		departments: []types.Department{
			{ID: types.UnassignedDepartmentID, Name: "Unassigned"},
		},
		benchmarks: map[string]float64{},
	}
}

// ---- snapshot accessors ----

func (s *Store) Skills() []types.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Skill(nil), s.skills...)
}

func (s *Store) Occupations() []types.Occupation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Occupation, len(s.occupations))
	for i, o := range s.occupations {
		o.RequiredSkills = append([]int(nil), o.RequiredSkills...)
		out[i] = o
	}
	return out
}

func (s *Store) Departments() []types.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Department(nil), s.departments...)
}

func (s *Store) People() []types.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Person, len(s.people))
	for i, p := range s.people {
		out[i] = copyPerson(p)
	}
	return out
}

func (s *Store) Competencies() []types.Competency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Competency(nil), s.competencies...)
}

func (s *Store) IssuedBadges() []types.IssuedBadge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.IssuedBadge(nil), s.issuedBadges...)
}

func (s *Store) OpenBadges() []types.OpenBadge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.OpenBadge(nil), s.openBadges...)
}

func (s *Store) Courses() []types.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Course(nil), s.courses...)
}

// ExternalSkills lists the external taxonomy candidates available when
// composing an occupation.
func (s *Store) ExternalSkills() []types.ExternalSkill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.ExternalSkill(nil), s.externalSkills...)
}

func (s *Store) Benchmarks() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]float64, len(s.benchmarks))
	for k, v := range s.benchmarks {
		out[k] = v
	}
	return out
}

func (s *Store) SetBenchmarks(b map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.benchmarks = make(map[string]float64, len(b))
	for k, v := range b {
		s.benchmarks[k] = v
	}
}

// ---- point lookups ----

func (s *Store) Person(id int) (types.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.people {
		if p.ID == id {
			return copyPerson(p), true
		}
	}
	return types.Person{}, false
}

func (s *Store) Skill(id int) (types.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sk := range s.skills {
		if sk.ID == id {
			return sk, true
		}
	}
	return types.Skill{}, false
}

func (s *Store) Occupation(id int) (types.Occupation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.occupations {
		if o.ID == id {
			o.RequiredSkills = append([]int(nil), o.RequiredSkills...)
			return o, true
		}
	}
	return types.Occupation{}, false
}

// OccupationByTitle resolves a person's job string to its occupation.
func (s *Store) OccupationByTitle(title string) (types.Occupation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.occupations {
		if o.Title == title {
			o.RequiredSkills = append([]int(nil), o.RequiredSkills...)
			return o, true
		}
	}
	return types.Occupation{}, false
}

func (s *Store) Course(id int) (types.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return types.Course{}, false
}

func (s *Store) Competency(id int) (types.Competency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.competencies {
		if c.ID == id {
			return c, true
		}
	}
	return types.Competency{}, false
}

// ---- people ----

// AddPerson assigns the next id and appends. A person without a name or a
// job is rejected; callers are expected to validate first, so this only
// logs a warning. A job title that matches no occupation is allowed but
// warned about, since every occupation join runs on that string.
func (s *Store) AddPerson(p types.Person) (types.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Job) == "" {
		s.log.Warn("AddPerson rejected: missing required fields", "name", p.Name, "job", p.Job)
		return types.Person{}, false
	}
	if _, ok := s.occupationByTitleLocked(p.Job); !ok {
		s.log.Warn("AddPerson: job matches no occupation title", "job", p.Job)
	}
	maxID := 0
	for _, existing := range s.people {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	s.people = append(s.people, copyPerson(p))
	return p, true
}

func (s *Store) UpdatePersonDepartment(personID, departmentID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.people {
		if s.people[i].ID == personID {
			s.people[i].DepartmentID = departmentID
			return true
		}
	}
	s.log.Warn("UpdatePersonDepartment: unknown person", "person_id", personID)
	return false
}

// UpsertPersonSkill sets the person's level for a skill, appending the
// skill when absent.
func (s *Store) UpsertPersonSkill(personID, skillID, level int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.people {
		if s.people[i].ID != personID {
			continue
		}
		for j := range s.people[i].Skills {
			if s.people[i].Skills[j].SkillID == skillID {
				s.people[i].Skills[j].Level = level
				return true
			}
		}
		s.people[i].Skills = append(s.people[i].Skills, types.PersonSkill{SkillID: skillID, Level: level})
		return true
	}
	s.log.Warn("UpsertPersonSkill: unknown person", "person_id", personID)
	return false
}

// ---- departments ----

func (s *Store) AddDepartment(name string) (types.Department, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return types.Department{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	maxID := 0
	for _, d := range s.departments {
		if d.ID > maxID {
			maxID = d.ID
		}
	}
	dept := types.Department{ID: maxID + 1, Name: trimmed}
	s.departments = append(s.departments, dept)
	return dept, true
}

func (s *Store) UpdateDepartment(id int, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID == id {
			s.departments[i].Name = name
			return true
		}
	}
	return false
}

// DeleteDepartment removes the department and reassigns its members to the
// Unassigned sentinel. Deleting the sentinel itself is a no-op.
func (s *Store) DeleteDepartment(id int) bool {
	if id == types.UnassignedDepartmentID {
		s.log.Warn("DeleteDepartment: refusing to delete the Unassigned sentinel")
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, d := range s.departments {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.departments = append(s.departments[:idx], s.departments[idx+1:]...)
	for i := range s.people {
		if s.people[i].DepartmentID == id {
			s.people[i].DepartmentID = types.UnassignedDepartmentID
		}
	}
	return true
}

// ---- skills & occupations ----

// AddSkillsAndOccupation resolves external skill candidates by
// case-insensitive name match against the existing skill list, minting new
// "Uncategorized" skills only for unseen names, then creates an occupation
// requiring the union of those ids and the selected internal ids. The
// name dedup is what prevents duplicate skill rows when the same concept
// arrives from both external and internal sources.
func (s *Store) AddSkillsAndOccupation(title, description string, external []types.ExternalSkill, internalSkillIDs []int) types.Occupation {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextSkillID := 0
	byLowerName := make(map[string]types.Skill, len(s.skills))
	for _, sk := range s.skills {
		if sk.ID > nextSkillID {
			nextSkillID = sk.ID
		}
		byLowerName[strings.ToLower(sk.Name)] = sk
	}
	nextSkillID++

	required := make([]int, 0, len(internalSkillIDs)+len(external))
	seen := make(map[int]bool)
	for _, id := range internalSkillIDs {
		if !seen[id] {
			seen[id] = true
			required = append(required, id)
		}
	}
	for _, ext := range external {
		lower := strings.ToLower(ext.Label)
		if existing, ok := byLowerName[lower]; ok {
			if !seen[existing.ID] {
				seen[existing.ID] = true
				required = append(required, existing.ID)
			}
			continue
		}
		minted := types.Skill{ID: nextSkillID, Name: ext.Label, Category: "Uncategorized"}
		s.skills = append(s.skills, minted)
		byLowerName[lower] = minted
		seen[minted.ID] = true
		required = append(required, minted.ID)
		nextSkillID++
	}

	maxOccID := 0
	for _, o := range s.occupations {
		if o.ID > maxOccID {
			maxOccID = o.ID
		}
	}
	occ := types.Occupation{
		ID:             maxOccID + 1,
		Title:          title,
		Description:    description,
		RequiredSkills: required,
	}
	s.occupations = append(s.occupations, occ)
	return occ
}

// OccupationUpdate carries optional field updates; nil means unchanged.
type OccupationUpdate struct {
	Title          *string
	Description    *string
	RequiredSkills *[]int
}

func (s *Store) UpdateOccupation(id int, upd OccupationUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.occupations {
		if s.occupations[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.occupations[i].Title = *upd.Title
		}
		if upd.Description != nil {
			s.occupations[i].Description = *upd.Description
		}
		if upd.RequiredSkills != nil {
			s.occupations[i].RequiredSkills = append([]int(nil), (*upd.RequiredSkills)...)
		}
		return true
	}
	return false
}

// DeleteOccupation does not touch people: Person.Job is a loose string, so
// people referencing the deleted title simply stop resolving to required
// skills.
func (s *Store) DeleteOccupation(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.occupations {
		if o.ID == id {
			s.occupations = append(s.occupations[:i], s.occupations[i+1:]...)
			return true
		}
	}
	return false
}

// ---- competencies & evidence ----

// AddCompetency enforces one record per (person, test method). The skill
// must be a NATA test method.
func (s *Store) AddCompetency(c types.Competency) (types.Competency, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	skill, ok := s.skillLocked(c.SkillID)
	if !ok || !skill.IsNataTestMethod {
		s.log.Warn("AddCompetency rejected: skill is not a NATA test method", "skill_id", c.SkillID)
		return types.Competency{}, false
	}
	for _, existing := range s.competencies {
		if existing.PersonID == c.PersonID && existing.SkillID == c.SkillID {
			s.log.Warn("AddCompetency rejected: competency already recorded",
				"person_id", c.PersonID, "skill_id", c.SkillID)
			return types.Competency{}, false
		}
	}
	maxID := 0
	for _, existing := range s.competencies {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	c.ID = maxID + 1
	if c.AuthorizationStatus == "" {
		c.AuthorizationStatus = types.StatusNotAuthorized
	}
	s.competencies = append(s.competencies, c)
	return c, true
}

// CompetencyUpdate carries optional field updates; nil means unchanged.
// No authorization-status transition rules apply: any status may follow
// any other.
type CompetencyUpdate struct {
	TrainingCompleteDate   *time.Time
	CompetencyAssessedDate *time.Time
	AssessedBy             *string
	AuthorizationStatus    *types.AuthorizationStatus
}

func (s *Store) UpdateCompetency(id int, upd CompetencyUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.competencies {
		if s.competencies[i].ID != id {
			continue
		}
		if upd.TrainingCompleteDate != nil {
			t := *upd.TrainingCompleteDate
			s.competencies[i].TrainingCompleteDate = &t
		}
		if upd.CompetencyAssessedDate != nil {
			t := *upd.CompetencyAssessedDate
			s.competencies[i].CompetencyAssessedDate = &t
		}
		if upd.AssessedBy != nil {
			s.competencies[i].AssessedBy = *upd.AssessedBy
		}
		if upd.AuthorizationStatus != nil {
			s.competencies[i].AuthorizationStatus = *upd.AuthorizationStatus
		}
		return true
	}
	s.log.Warn("UpdateCompetency: unknown competency", "competency_id", id)
	return false
}

func (s *Store) AddEvidence(competencyID int, record, author string) (types.Evidence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, c := range s.competencies {
		if c.ID == competencyID {
			found = true
			break
		}
	}
	if !found {
		s.log.Warn("AddEvidence: unknown competency", "competency_id", competencyID)
		return types.Evidence{}, false
	}
	maxID := 0
	for _, e := range s.evidence {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	ev := types.Evidence{
		ID:           maxID + 1,
		CompetencyID: competencyID,
		Date:         time.Now(),
		Record:       record,
		Author:       author,
	}
	s.evidence = append(s.evidence, ev)
	return ev, true
}

// EvidenceForCompetency returns the append-only evidence log, newest
// first.
func (s *Store) EvidenceForCompetency(competencyID int) []types.Evidence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.Evidence
	for _, e := range s.evidence {
		if e.CompetencyID == competencyID {
			out = append(out, e)
		}
	}
	sortEvidenceDesc(out)
	return out
}

// ---- badges ----

// IssueBadge mints a general compliance credential with generated badge
// and verification ids.
func (s *Store) IssueBadge(personID, skillID int, issueDate, expiryDate time.Time) (types.IssuedBadge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	personOK := false
	for _, p := range s.people {
		if p.ID == personID {
			personOK = true
			break
		}
	}
	if !personOK {
		s.log.Warn("IssueBadge: unknown person", "person_id", personID)
		return types.IssuedBadge{}, false
	}
	if _, ok := s.skillLocked(skillID); !ok {
		s.log.Warn("IssueBadge: unknown skill", "skill_id", skillID)
		return types.IssuedBadge{}, false
	}
	badge := types.IssuedBadge{
		ID:             uuid.New().String(),
		PersonID:       personID,
		SkillID:        skillID,
		IssueDate:      issueDate,
		ExpiryDate:     expiryDate,
		VerificationID: uuid.New().String(),
	}
	s.issuedBadges = append(s.issuedBadges, badge)
	return badge, true
}

func (s *Store) PendingBadges() []types.OpenBadge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.OpenBadge(nil), s.pendingBadges...)
}

func (s *Store) QueuePendingBadge(b types.OpenBadge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	s.pendingBadges = append(s.pendingBadges, b)
}

// CommitOpenBadges moves the given badges into the permanent open-badge
// log and clears the pending queue.
func (s *Store) CommitOpenBadges(badges []types.OpenBadge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openBadges = append(s.openBadges, badges...)
	s.pendingBadges = nil
}

// ---- courses ----

func (s *Store) AddCourse(title, provider string, providesSkillID int) (types.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(title) == "" {
		return types.Course{}, false
	}
	if _, ok := s.skillLocked(providesSkillID); !ok {
		s.log.Warn("AddCourse: unknown skill", "skill_id", providesSkillID)
		return types.Course{}, false
	}
	maxID := 0
	for _, c := range s.courses {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	course := types.Course{ID: maxID + 1, Title: title, Provider: provider, ProvidesSkillID: providesSkillID}
	s.courses = append(s.courses, course)
	return course, true
}

// ---- internal helpers ----

func (s *Store) skillLocked(id int) (types.Skill, bool) {
	for _, sk := range s.skills {
		if sk.ID == id {
			return sk, true
		}
	}
	return types.Skill{}, false
}

func (s *Store) occupationByTitleLocked(title string) (types.Occupation, bool) {
	for _, o := range s.occupations {
		if o.Title == title {
			return o, true
		}
	}
	return types.Occupation{}, false
}

func copyPerson(p types.Person) types.Person {
	p.Skills = append([]types.PersonSkill(nil), p.Skills...)
	p.Qualifications = append([]string(nil), p.Qualifications...)
	return p
}

func sortEvidenceDesc(evidence []types.Evidence) {
	sort.Slice(evidence, func(i, j int) bool {
		if !evidence[i].Date.Equal(evidence[j].Date) {
			return evidence[i].Date.After(evidence[j].Date)
		}
		return evidence[i].ID > evidence[j].ID
	})
}
