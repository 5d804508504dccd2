package usecase

import (
	"context"

	"hostelhub/internal/converter"
	"hostelhub/internal/delivery/dto"
	"hostelhub/internal/domain/entity"
	"hostelhub/internal/domain/repository"
	"hostelhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StudentUsecase interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.StudentResponse, error)
	ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID) (*dto.StudentListResponse, error)
	CheckOut(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.StudentResponse, error)
}

type studentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	studentRepo repository.StudentRepository
	hostelRepo  repository.HostelRepository
	conversion  *service.StudentConversionService
	audit       service.AuditService
}

func NewStudentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	studentRepo repository.StudentRepository,
	hostelRepo repository.HostelRepository,
	conversion *service.StudentConversionService,
	audit service.AuditService,
) StudentUsecase {
	return &studentUsecase{
		db:          db,
		log:         log,
		studentRepo: studentRepo,
		hostelRepo:  hostelRepo,
		conversion:  conversion,
		audit:       audit,
	}
}

// requireHostelAccess enforces the owner-or-admin scope on student records
func (u *studentUsecase) requireHostelAccess(db *gorm.DB, hostelID, actorID uuid.UUID, actorRole int) error {
	if actorRole == entity.RoleIDAdmin || actorRole == entity.RoleIDStaff {
		return nil
	}
	hostel, err := u.hostelRepo.FindByID(db, hostelID)
	if err != nil {
		return err
	}
	if hostel == nil {
		return ErrHostelNotFound
	}
	if !hostel.IsOwnedBy(actorID) {
		return ErrNotHostelOwner
	}
	return nil
}

func (u *studentUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.StudentResponse, error) {
	db := u.db.WithContext(ctx)

	student, err := u.studentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find student by ID: %+v", err)
		return nil, err
	}
	if student == nil {
		return nil, service.ErrStudentNotFound
	}

	// A student may view their own record
	if student.UserID == nil || *student.UserID != actorID {
		if err := u.requireHostelAccess(db, student.HostelID, actorID, actorRole); err != nil {
			return nil, err
		}
	}

	return converter.StudentToResponse(student), nil
}

func (u *studentUsecase) ListByHostel(ctx context.Context, actorID uuid.UUID, actorRole int, hostelID uuid.UUID) (*dto.StudentListResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.requireHostelAccess(db, hostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	students, err := u.studentRepo.FindByHostelID(db, hostelID)
	if err != nil {
		u.log.Warnf("Failed to list students: %+v", err)
		return nil, err
	}

	return &dto.StudentListResponse{
		Students: converter.StudentsToResponses(students),
		Total:    len(students),
	}, nil
}

func (u *studentUsecase) CheckOut(ctx context.Context, actorID uuid.UUID, actorRole int, id uuid.UUID) (*dto.StudentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	student, err := u.studentRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, service.ErrStudentNotFound
	}
	if err := u.requireHostelAccess(tx, student.HostelID, actorID, actorRole); err != nil {
		return nil, err
	}

	student, err = u.conversion.CheckOutStudent(tx, id)
	if err != nil {
		u.log.Warnf("Failed to check out student: %+v", err)
		return nil, err
	}

	u.audit.LogUpdate(ctx, tx, &actorID, entity.AuditActionStudentCheckOut, "student", student.ID.String(),
		nil, entity.JSON{"status": student.Status})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.StudentToResponse(student), nil
}
