package service

import (
	"context"

	"github.com/google/uuid"

	"hostel-mgmt-be/internal/entity"
	"hostel-mgmt-be/internal/pkg/logger"
	"hostel-mgmt-be/internal/repository/contract"
	"hostel-mgmt-be/internal/repository/specification"
	"hostel-mgmt-be/internal/repository/unitofwork"
)

// In-memory repository doubles backing the service tests. They interpret the
// specification types the services actually pass; ordering and pagination
// specs are ignored.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }
func (nopLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(string) (*logger.LogEntry, error) { return nil, nil }

type stubQueuePublisher struct {
	payloads [][]byte
}

func (p *stubQueuePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type stubStudentRepo struct {
	students []*entity.Student
}

func (r *stubStudentRepo) add(students ...*entity.Student) {
	r.students = append(r.students, students...)
}

func studentMatches(s *entity.Student, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		case specification.FilterBy:
			switch v.Field {
			case "gender":
				if string(s.Gender) != v.Value.(string) {
					return false
				}
			case "status":
				if string(s.Status) != v.Value.(string) {
					return false
				}
			}
		case specification.Unassigned:
			if s.HasRoom() {
				return false
			}
		}
	}
	return true
}

func (r *stubStudentRepo) Create(_ context.Context, student *entity.Student) error {
	r.add(student)
	return nil
}

func (r *stubStudentRepo) Update(_ context.Context, student *entity.Student) error {
	for i, s := range r.students {
		if s.Id == student.Id {
			r.students[i] = student
			return nil
		}
	}
	r.add(student)
	return nil
}

func (r *stubStudentRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Student, error) {
	for _, s := range r.students {
		if studentMatches(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *stubStudentRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Student, error) {
	res := make([]*entity.Student, 0, len(r.students))
	for _, s := range r.students {
		if studentMatches(s, specs) {
			res = append(res, s)
		}
	}
	return res, nil
}

func (r *stubStudentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, _ := r.FindAll(ctx, specs...)
	return int64(len(res)), nil
}

func (r *stubStudentRepo) FindByIds(_ context.Context, ids []uuid.UUID) ([]*entity.Student, error) {
	res := make([]*entity.Student, 0, len(ids))
	for _, id := range ids {
		for _, s := range r.students {
			if s.Id == id {
				res = append(res, s)
				break
			}
		}
	}
	return res, nil
}

func (r *stubStudentRepo) RoomOccupancy(_ context.Context, roomId uuid.UUID) (*entity.Occupancy, error) {
	occ := &entity.Occupancy{RoomId: roomId}
	for _, s := range r.students {
		if s.RoomId != nil && *s.RoomId == roomId {
			occ.Confirmed++
		}
		if s.TemporaryRoomId != nil && *s.TemporaryRoomId == roomId {
			occ.Temporary++
		}
	}
	return occ, nil
}

type stubRoomRepo struct {
	rooms []*entity.Room
}

func (r *stubRoomRepo) add(rooms ...*entity.Room) {
	r.rooms = append(r.rooms, rooms...)
}

func (r *stubRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.add(room)
	return nil
}

func (r *stubRoomRepo) Update(_ context.Context, room *entity.Room) error {
	for i, existing := range r.rooms {
		if existing.Id == room.Id {
			r.rooms[i] = room
			return nil
		}
	}
	r.add(room)
	return nil
}

func (r *stubRoomRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Room, error) {
	for _, room := range r.rooms {
		ok := true
		for _, sp := range specs {
			if v, isId := sp.(specification.ByID); isId && room.Id != v.ID {
				ok = false
			}
		}
		if ok {
			return room, nil
		}
	}
	return nil, nil
}

func (r *stubRoomRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Room, error) {
	res := make([]*entity.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		ok := true
		for _, sp := range specs {
			if v, isFilter := sp.(specification.FilterBy); isFilter {
				switch v.Field {
				case "gender":
					if string(room.Gender) != v.Value.(string) {
						ok = false
					}
				case "room_type":
					if string(room.RoomType) != v.Value.(string) {
						ok = false
					}
				}
			}
		}
		if ok {
			res = append(res, room)
		}
	}
	return res, nil
}

func (r *stubRoomRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, _ := r.FindAll(ctx, specs...)
	return int64(len(res)), nil
}

type stubGroupRepo struct {
	groups []*entity.RoommateGroup
}

func (r *stubGroupRepo) add(groups ...*entity.RoommateGroup) {
	r.groups = append(r.groups, groups...)
}

func (r *stubGroupRepo) byId(id uuid.UUID) *entity.RoommateGroup {
	for _, g := range r.groups {
		if g.Id == id {
			return g
		}
	}
	return nil
}

func groupMatches(g *entity.RoommateGroup, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if g.Id != v.ID {
				return false
			}
		case specification.ByStatusIn:
			found := false
			for _, st := range v.Statuses {
				if string(g.Status) == st {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *stubGroupRepo) Create(_ context.Context, group *entity.RoommateGroup) error {
	r.add(group)
	return nil
}

func (r *stubGroupRepo) Update(_ context.Context, group *entity.RoommateGroup) error {
	for i, g := range r.groups {
		if g.Id == group.Id {
			r.groups[i] = group
			return nil
		}
	}
	r.add(group)
	return nil
}

func (r *stubGroupRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.RoommateGroup, error) {
	for _, g := range r.groups {
		if groupMatches(g, specs) {
			return g, nil
		}
	}
	return nil, nil
}

func (r *stubGroupRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.RoommateGroup, error) {
	res := make([]*entity.RoommateGroup, 0, len(r.groups))
	for _, g := range r.groups {
		if groupMatches(g, specs) {
			res = append(res, g)
		}
	}
	return res, nil
}

func (r *stubGroupRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, _ := r.FindAll(ctx, specs...)
	return int64(len(res)), nil
}

func (r *stubGroupRepo) FindActiveByMember(_ context.Context, studentId uuid.UUID) (*entity.RoommateGroup, error) {
	for _, g := range r.groups {
		if g.IsActive() && g.IsMember(studentId) {
			return g, nil
		}
	}
	return nil, nil
}

type stubRequestRepo struct {
	requests []*entity.RoommateRequest
}

func (r *stubRequestRepo) byId(id uuid.UUID) *entity.RoommateRequest {
	for _, req := range r.requests {
		if req.Id == id {
			return req
		}
	}
	return nil
}

func requestMatches(req *entity.RoommateRequest, specs []specification.Specification) bool {
	for _, sp := range specs {
		switch v := sp.(type) {
		case specification.ByID:
			if req.Id != v.ID {
				return false
			}
		case specification.FilterBy:
			switch v.Field {
			case "requester_id":
				if req.RequesterId != v.Value.(uuid.UUID) {
					return false
				}
			case "target_id":
				if req.TargetId != v.Value.(uuid.UUID) {
					return false
				}
			case "group_id":
				if req.GroupId != v.Value.(uuid.UUID) {
					return false
				}
			case "status":
				if string(req.Status) != v.Value.(string) {
					return false
				}
			}
		}
	}
	return true
}

func (r *stubRequestRepo) Create(_ context.Context, request *entity.RoommateRequest) error {
	r.requests = append(r.requests, request)
	return nil
}

func (r *stubRequestRepo) Update(_ context.Context, request *entity.RoommateRequest) error {
	for i, req := range r.requests {
		if req.Id == request.Id {
			r.requests[i] = request
			return nil
		}
	}
	r.requests = append(r.requests, request)
	return nil
}

func (r *stubRequestRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.RoommateRequest, error) {
	for _, req := range r.requests {
		if requestMatches(req, specs) {
			return req, nil
		}
	}
	return nil, nil
}

func (r *stubRequestRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.RoommateRequest, error) {
	res := make([]*entity.RoommateRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if requestMatches(req, specs) {
			res = append(res, req)
		}
	}
	return res, nil
}

func (r *stubRequestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	res, _ := r.FindAll(ctx, specs...)
	return int64(len(res)), nil
}

type stubUnitOfWork struct {
	students *stubStudentRepo
	rooms    *stubRoomRepo
	groups   *stubGroupRepo
	requests *stubRequestRepo
}

func (u *stubUnitOfWork) Begin(context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error               { return nil }
func (u *stubUnitOfWork) Rollback() error             { return nil }

func (u *stubUnitOfWork) UserRepository() contract.UserRepository       { return nil }
func (u *stubUnitOfWork) StudentRepository() contract.StudentRepository { return u.students }
func (u *stubUnitOfWork) RoomRepository() contract.RoomRepository       { return u.rooms }
func (u *stubUnitOfWork) RoommateGroupRepository() contract.RoommateGroupRepository {
	return u.groups
}
func (u *stubUnitOfWork) RoommateRequestRepository() contract.RoommateRequestRepository {
	return u.requests
}
func (u *stubUnitOfWork) RoomChangeRepository() contract.RoomChangeRepository     { return nil }
func (u *stubUnitOfWork) FeeRepository() contract.FeeRepository                   { return nil }
func (u *stubUnitOfWork) WalletRepository() contract.WalletRepository             { return nil }
func (u *stubUnitOfWork) NotificationRepository() contract.NotificationRepository { return nil }

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func activeStudent(name string, gender entity.Gender) *entity.Student {
	return &entity.Student{
		Id:     uuid.New(),
		UserId: uuid.New(),
		Name:   name,
		Gender: gender,
		Status: entity.StudentStatusActive,
	}
}

func availableRoom(roomType entity.RoomType, gender entity.Gender) *entity.Room {
	return &entity.Room{
		Id:                uuid.New(),
		RoomNumber:        "A-101",
		RoomType:          roomType,
		Gender:            gender,
		Capacity:          roomType.Capacity(),
		TotalPrice:        130000,
		Status:            entity.RoomStatusAvailable,
		MaintenanceStatus: entity.MaintenanceNone,
	}
}
