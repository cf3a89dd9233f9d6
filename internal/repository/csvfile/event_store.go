package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"feriascalendar/internal/domain"
)

// Column headers of the backing file.
const (
	colName        = "Nombre"
	colStartDate   = "Fecha inicio"
	colEndDate     = "Fecha fin"
	colCity        = "Ciudad"
	colDepartment  = "Departamento"
	colSector      = "Sector"
	colOrganizer   = "Organizador"
	colContact     = "Contacto"
	colWebsite     = "Web"
	colApproved    = "Aprobado"
	colID          = "ID"
	colDescription = "Descripcion"
)

// Header is the column order written by Save.
var Header = []string{
	colName, colStartDate, colEndDate, colCity, colDepartment, colSector,
	colOrganizer, colContact, colWebsite, colApproved, colID, colDescription,
}

const (
	tmpPattern      = ".eventos-*.tmp"
	filePermissions = 0o644
)

// legacyIDNamespace seeds name-based IDs for rows written before the ID column existed.
var legacyIDNamespace = uuid.MustParse("6f1c5a52-1c1e-4d55-9a7b-3f0f2d1e8c41")

type eventStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewEventStore returns an EventStore backed by the CSV file at path.
// A missing file is an empty directory; it is created on the first write.
func NewEventStore(path string, logger *slog.Logger) domain.EventStore {
	return &eventStore{path: path, logger: logger}
}

func (s *eventStore) Load(ctx context.Context) ([]*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *eventStore) Save(ctx context.Context, events []*domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, events)
}

func (s *eventStore) Append(ctx context.Context, event *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.load(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, append(events, event))
}

func (s *eventStore) Update(ctx context.Context, id string, mutate func(*domain.Event) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(events, id)
	if i < 0 {
		return fmt.Errorf("update event %q: %w", id, domain.ErrNotFound)
	}
	if err := mutate(events[i]); err != nil {
		return err
	}
	return s.save(ctx, events)
}

func (s *eventStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(events, id)
	if i < 0 {
		return fmt.Errorf("delete event %q: %w", id, domain.ErrNotFound)
	}
	events = append(events[:i], events[i+1:]...)
	return s.save(ctx, events)
}

func indexOf(events []*domain.Event, id string) int {
	for i, e := range events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// load reads the file; caller must hold mu.
func (s *eventStore) load(ctx context.Context) ([]*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*domain.Event{}, nil
		}
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("failed to close events file", "path", s.path, "err", err)
		}
	}()

	events, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read events file %s: %w", s.path, err)
	}
	return events, nil
}

// save writes to a temp file in the same directory and renames it over the target; caller must hold mu.
func (s *eventStore) save(ctx context.Context, events []*domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return fmt.Errorf("create temp events file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			if err := os.Remove(tmpName); err != nil && !errors.Is(err, fs.ErrNotExist) {
				s.logger.Warn("failed to remove temp events file", "path", tmpName, "err", err)
			}
		}
	}()

	if err := Encode(tmp, events); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write events: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync events file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp events file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		return fmt.Errorf("chmod events file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace events file: %w", err)
	}
	committed = true
	s.logger.Debug("events saved", "path", s.path, "count", len(events))
	return nil
}

// Decode reads events from CSV. Columns are matched by header name; ID and Descripcion may be absent.
func Decode(r io.Reader) ([]*domain.Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []*domain.Event{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		cols[h] = i
	}

	events := make([]*domain.Event, 0)
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		}
		e := &domain.Event{
			ID:          strings.TrimSpace(get(colID)),
			Name:        get(colName),
			StartDate:   domain.ParseDate(get(colStartDate)),
			EndDate:     domain.ParseDate(get(colEndDate)),
			City:        get(colCity),
			Department:  get(colDepartment),
			Sector:      get(colSector),
			Organizer:   get(colOrganizer),
			Contact:     get(colContact),
			Website:     get(colWebsite),
			Description: get(colDescription),
			Approved:    domain.ParseApproval(get(colApproved)),
		}
		if e.ID == "" {
			e.ID = legacyID(row, rec)
		}
		events = append(events, e)
	}
	return events, nil
}

// legacyID derives a stable ID from the row position and content.
func legacyID(row int, rec []string) string {
	name := strconv.Itoa(row) + "\x1f" + strings.Join(rec, "\x1f")
	return uuid.NewSHA1(legacyIDNamespace, []byte(name)).String()
}

// Encode writes the header and one row per event.
func Encode(w io.Writer, events []*domain.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range events {
		rec := []string{
			e.Name,
			e.StartDate.String(),
			e.EndDate.String(),
			e.City,
			e.Department,
			e.Sector,
			e.Organizer,
			e.Contact,
			e.Website,
			domain.FormatApproval(e.Approved),
			e.ID,
			e.Description,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
