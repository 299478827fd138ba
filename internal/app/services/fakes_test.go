package services

import (
	"context"
	"slices"
	"sort"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

func ptr[T any](v T) *T { return &v }

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func assignNullable[T any](dst **T, n models.Nullable[T]) {
	if n.Set {
		*dst = n.Value
	}
}

// window returns the ids selected by p in ascending order
func window(ids []int64, p helpers.Page) []int64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if p.Skip >= len(ids) {
		return nil
	}
	ids = ids[p.Skip:]
	if p.Limit < len(ids) {
		ids = ids[:p.Limit]
	}
	return ids
}

// fakeLookup is an in-memory LookupStore
type fakeLookup[T any] struct {
	names map[int64]string
	build func(int64, string) *T
	next  int64
	err   error
}

func newFakeLookup[T any](build func(int64, string) *T, names ...string) *fakeLookup[T] {
	f := &fakeLookup[T]{names: map[int64]string{}, build: build}
	for _, n := range names {
		f.next++
		f.names[f.next] = n
	}
	return f
}

func newFakeDepartments(names ...string) *fakeLookup[models.Department] {
	return newFakeLookup(func(id int64, name string) *models.Department {
		return &models.Department{ID: id, Name: name}
	}, names...)
}

func newFakeJournals(names ...string) *fakeLookup[models.Journal] {
	return newFakeLookup(func(id int64, name string) *models.Journal {
		return &models.Journal{ID: id, Name: name}
	}, names...)
}

func newFakeAreas(names ...string) *fakeLookup[models.ResearchArea] {
	return newFakeLookup(func(id int64, name string) *models.ResearchArea {
		return &models.ResearchArea{ID: id, Name: name}
	}, names...)
}

func (f *fakeLookup[T]) Create(_ context.Context, name string) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.next++
	f.names[f.next] = name
	return f.build(f.next, name), nil
}

func (f *fakeLookup[T]) GetByID(_ context.Context, id int64) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	name, ok := f.names[id]
	if !ok {
		return nil, nil
	}
	return f.build(id, name), nil
}

func (f *fakeLookup[T]) GetByName(_ context.Context, name string) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	for id, n := range f.names {
		if n == name {
			return f.build(id, n), nil
		}
	}
	return nil, nil
}

func (f *fakeLookup[T]) List(_ context.Context, page helpers.Page) ([]*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	ids := make([]int64, 0, len(f.names))
	for id := range f.names {
		ids = append(ids, id)
	}
	var out []*T
	for _, id := range window(ids, page) {
		out = append(out, f.build(id, f.names[id]))
	}
	return out, nil
}

func (f *fakeLookup[T]) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.names[id]
	return ok, nil
}

func (f *fakeLookup[T]) MissingIDs(_ context.Context, ids []int64) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := f.names[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// fakeProfessors is an in-memory ProfessorStore
type fakeProfessors struct {
	rows      map[int64]*models.Professor
	areas     map[int64][]int64
	next      int64
	createErr error
}

func newFakeProfessors() *fakeProfessors {
	return &fakeProfessors{rows: map[int64]*models.Professor{}, areas: map[int64][]int64{}}
}

func (f *fakeProfessors) add(first, last, email string) *models.Professor {
	f.next++
	p := &models.Professor{ID: f.next, FirstName: first, LastName: last, Email: email}
	f.rows[p.ID] = p
	return p
}

func (f *fakeProfessors) GetByID(_ context.Context, id int64) (*models.Professor, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfessors) List(_ context.Context, page helpers.Page) ([]*models.Professor, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	var out []*models.Professor
	for _, id := range window(ids, page) {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeProfessors) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProfessors) GetIDByEmail(_ context.Context, email string) (int64, error) {
	for id, p := range f.rows {
		if p.Email == email {
			return id, nil
		}
	}
	return 0, nil
}

func (f *fakeProfessors) Create(_ context.Context, p *models.Professor, areaIDs []int64) (*models.Professor, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.next++
	cp := *p
	cp.ID = f.next
	f.rows[cp.ID] = &cp
	f.areas[cp.ID] = slices.Clone(areaIDs)
	out := cp
	return &out, nil
}

func (f *fakeProfessors) Update(_ context.Context, id int64, patch models.ProfessorPatch) (*models.Professor, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	assign(&p.FirstName, patch.FirstName)
	assign(&p.LastName, patch.LastName)
	assign(&p.Email, patch.Email)
	assignNullable(&p.Phone, patch.Phone)
	assignNullable(&p.Title, patch.Title)
	assignNullable(&p.Office, patch.Office)
	assignNullable(&p.ImageURL, patch.ImageURL)
	assignNullable(&p.DepartmentID, patch.DepartmentID)
	if patch.ResearchAreaIDs != nil {
		f.areas[id] = slices.Clone(*patch.ResearchAreaIDs)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfessors) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakeStudents is an in-memory StudentStore
type fakeStudents struct {
	rows map[int64]*models.GradStudent
	next int64
}

func newFakeStudents() *fakeStudents {
	return &fakeStudents{rows: map[int64]*models.GradStudent{}}
}

func (f *fakeStudents) add(first, email string) *models.GradStudent {
	f.next++
	s := &models.GradStudent{ID: f.next, FirstName: first, LastName: "Student", Email: email, Type: models.StudentTypePhD}
	f.rows[s.ID] = s
	return s
}

func (f *fakeStudents) GetByID(_ context.Context, id int64) (*models.GradStudent, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudents) List(_ context.Context, page helpers.Page) ([]*models.GradStudent, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	var out []*models.GradStudent
	for _, id := range window(ids, page) {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeStudents) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeStudents) GetIDByEmail(_ context.Context, email string) (int64, error) {
	for id, s := range f.rows {
		if s.Email == email {
			return id, nil
		}
	}
	return 0, nil
}

func (f *fakeStudents) Create(_ context.Context, s *models.GradStudent, _ []int64) (*models.GradStudent, error) {
	f.next++
	cp := *s
	cp.ID = f.next
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeStudents) Update(_ context.Context, id int64, patch models.StudentPatch) (*models.GradStudent, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	assign(&s.FirstName, patch.FirstName)
	assign(&s.LastName, patch.LastName)
	assign(&s.Email, patch.Email)
	assign(&s.EnrollmentDate, patch.EnrollmentDate)
	assign(&s.Type, patch.Type)
	assignNullable(&s.ImageURL, patch.ImageURL)
	assignNullable(&s.AdvisorID, patch.AdvisorID)
	assignNullable(&s.DepartmentID, patch.DepartmentID)
	cp := *s
	return &cp, nil
}

func (f *fakeStudents) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakeProjects is an in-memory ProjectStore
type fakeProjects struct {
	rows map[int64]*models.Project
	next int64
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{rows: map[int64]*models.Project{}}
}

func (f *fakeProjects) GetByID(_ context.Context, id int64) (*models.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) List(_ context.Context, page helpers.Page) ([]*models.Project, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	var out []*models.Project
	for _, id := range window(ids, page) {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakeProjects) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProjects) Create(_ context.Context, p *models.Project) (*models.Project, error) {
	f.next++
	cp := *p
	cp.ID = f.next
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeProjects) Update(_ context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	assign(&p.Title, patch.Title)
	assign(&p.StartDate, patch.StartDate)
	assignNullable(&p.EndDate, patch.EndDate)
	assign(&p.Status, patch.Status)
	assignNullable(&p.FundingAmount, patch.FundingAmount)
	assign(&p.FundingSource, patch.FundingSource)
	assignNullable(&p.Description, patch.Description)
	assignNullable(&p.LeadProfessorID, patch.LeadProfessorID)
	assignNullable(&p.DepartmentID, patch.DepartmentID)
	cp := *p
	return &cp, nil
}

func (f *fakeProjects) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakePublications is an in-memory PublicationStore
type fakePublications struct {
	rows map[int64]*models.Publication
	next int64
}

func newFakePublications() *fakePublications {
	return &fakePublications{rows: map[int64]*models.Publication{}}
}

func (f *fakePublications) GetByID(_ context.Context, id int64) (*models.Publication, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePublications) List(_ context.Context, page helpers.Page) ([]*models.Publication, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	var out []*models.Publication
	for _, id := range window(ids, page) {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakePublications) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakePublications) Create(_ context.Context, p *models.Publication) (*models.Publication, error) {
	f.next++
	cp := *p
	cp.ID = f.next
	f.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakePublications) Update(_ context.Context, id int64, patch models.PublicationPatch) (*models.Publication, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	assign(&p.Title, patch.Title)
	assignNullable(&p.JournalID, patch.JournalID)
	assign(&p.Year, patch.Year)
	assignNullable(&p.Volume, patch.Volume)
	assignNullable(&p.Issue, patch.Issue)
	assignNullable(&p.Pages, patch.Pages)
	assign(&p.Citations, patch.Citations)
	assignNullable(&p.Abstract, patch.Abstract)
	cp := *p
	return &cp, nil
}

func (f *fakePublications) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakeLinks records association rows keyed by (owner, member)
type fakeLinks struct {
	professorProjects map[[2]int64]*string
	studentProjects   map[[2]int64]*string
	professorAuthors  map[[2]int64]int
	studentAuthors    map[[2]int64]int
	err               error
}

func newFakeLinks() *fakeLinks {
	return &fakeLinks{
		professorProjects: map[[2]int64]*string{},
		studentProjects:   map[[2]int64]*string{},
		professorAuthors:  map[[2]int64]int{},
		studentAuthors:    map[[2]int64]int{},
	}
}

func remove[V any](m map[[2]int64]V, key [2]int64) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}

func (f *fakeLinks) AddProfessorToProject(_ context.Context, m models.ProjectMember) error {
	if f.err != nil {
		return f.err
	}
	f.professorProjects[[2]int64{m.ProjectID, m.MemberID}] = m.Role
	return nil
}

func (f *fakeLinks) RemoveProfessorFromProject(_ context.Context, projectID, professorID int64) (bool, error) {
	return remove(f.professorProjects, [2]int64{projectID, professorID}), f.err
}

func (f *fakeLinks) AddStudentToProject(_ context.Context, m models.ProjectMember) error {
	if f.err != nil {
		return f.err
	}
	f.studentProjects[[2]int64{m.ProjectID, m.MemberID}] = m.Role
	return nil
}

func (f *fakeLinks) RemoveStudentFromProject(_ context.Context, projectID, studentID int64) (bool, error) {
	return remove(f.studentProjects, [2]int64{projectID, studentID}), f.err
}

func (f *fakeLinks) AddProfessorAuthor(_ context.Context, a models.Authorship) error {
	if f.err != nil {
		return f.err
	}
	f.professorAuthors[[2]int64{a.PublicationID, a.AuthorID}] = a.AuthorOrder
	return nil
}

func (f *fakeLinks) RemoveProfessorAuthor(_ context.Context, publicationID, professorID int64) (bool, error) {
	return remove(f.professorAuthors, [2]int64{publicationID, professorID}), f.err
}

func (f *fakeLinks) AddStudentAuthor(_ context.Context, a models.Authorship) error {
	if f.err != nil {
		return f.err
	}
	f.studentAuthors[[2]int64{a.PublicationID, a.AuthorID}] = a.AuthorOrder
	return nil
}

func (f *fakeLinks) RemoveStudentAuthor(_ context.Context, publicationID, studentID int64) (bool, error) {
	return remove(f.studentAuthors, [2]int64{publicationID, studentID}), f.err
}
