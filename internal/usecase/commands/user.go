package commands

import (
	"context"
	"log/slog"

	"library-admin/internal/domain/activity"
	"library-admin/internal/domain/user"
	"library-admin/internal/infra"
	"library-admin/internal/pkg/clock"
	"library-admin/internal/pkg/errs"
	"library-admin/internal/pkg/password"
	"library-admin/internal/pkg/patch"
	"library-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddUserInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Gender    string
	Address   string
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
	Gender    *string
	Address   *string
}

type UserCommands interface {
	AddUser(ctx context.Context, in AddUserInput) (*UserResult, error)
	UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*UserResult, error)
	ToggleFlag(ctx context.Context, id uuid.UUID) (*FlagResult, error)
	SetFlag(ctx context.Context, id uuid.UUID, flagged bool) (*FlagResult, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*DeleteUserResult, error)
}

type userUseCaseImpl struct {
	uow   shared.UnitOfWork
	locks shared.LockGuard
	clock clock.Clock
}

func NewUserUseCase(uow shared.UnitOfWork, locks shared.LockGuard, clk clock.Clock) UserCommands {
	return &userUseCaseImpl{uow: uow, locks: locks, clock: clk}
}

func (uc *userUseCaseImpl) AddUser(ctx context.Context, in AddUserInput) (*UserResult, error) {
	profile := user.Profile(in)
	username, err := user.NewUsername(profile.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	initial, err := password.Initial(profile.FirstName, username.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	hash, err := password.HashPassword(initial)
	if err != nil {
		return nil, errs.Wrap(err, "hash initial password")
	}

	u, err := user.NewMember(profile, hash, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateUser
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user added", "user_id", u.ID())
	return &UserResult{
		UserID:          u.ID(),
		Username:        u.Username().String(),
		InitialPassword: initial,
	}, nil
}

func (uc *userUseCaseImpl) UpdateUser(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*UserResult, error) {
	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var result *UserResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}

		cur := u.Profile()
		identityChanged, err := u.UpdateProfile(user.Profile{
			FirstName: patch.CoalesceTrimmed(in.FirstName, cur.FirstName),
			LastName:  patch.CoalesceTrimmed(in.LastName, cur.LastName),
			Username:  patch.CoalesceTrimmed(in.Username, cur.Username),
			Email:     patch.CoalesceTrimmed(in.Email, cur.Email),
			Gender:    patch.Coalesce(in.Gender, cur.Gender),
			Address:   patch.Coalesce(in.Address, cur.Address),
		}, uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.Users().UpdateProfile(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateUser
			}
			return err
		}
		result = &UserResult{UserID: u.ID(), Username: u.Username().String()}
		if !identityChanged {
			return nil
		}

		n, err := tx.Issues().PropagateUserInfo(ctx, userInfo(u))
		if err != nil {
			slog.WarnContext(ctx, "user snapshot propagation failed",
				"user_id", u.ID(),
				"integrity", true,
				"error", err)
			return errs.Mark(errs.Wrap(err, "propagate user info"), errs.ErrSnapshotPropagation)
		}
		slog.DebugContext(ctx, "user snapshot propagated", "user_id", u.ID(), "issues", n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user updated", "user_id", id)
	return result, nil
}

func (uc *userUseCaseImpl) ToggleFlag(ctx context.Context, id uuid.UUID) (*FlagResult, error) {
	return uc.changeFlag(ctx, id, func(current bool) bool { return !current })
}

func (uc *userUseCaseImpl) SetFlag(ctx context.Context, id uuid.UUID, flagged bool) (*FlagResult, error) {
	return uc.changeFlag(ctx, id, func(bool) bool { return flagged })
}

// changeFlag records a Flag/Unflag activity on every call, even when the
// value does not change.
func (uc *userUseCaseImpl) changeFlag(ctx context.Context, id uuid.UUID, next func(current bool) bool) (*FlagResult, error) {
	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var result *FlagResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}

		now := uc.clock.Now()
		flagged := next(u.ViolationFlag())
		u.SetFlag(flagged, now)
		if err := tx.Users().UpdateFlag(ctx, u); err != nil {
			return err
		}

		category := activity.CategoryUnflag
		if flagged {
			category = activity.CategoryFlag
		}
		a, err := activity.Record(category, nil, nil, activity.UserSnapshot{
			ID:       u.ID(),
			Username: u.Username().String(),
			FullName: u.FullName(),
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Activities().Append(ctx, a); err != nil {
			return err
		}
		result = &FlagResult{UserID: u.ID(), Flagged: flagged}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user flag changed", "user_id", id, "flagged", result.Flagged)
	return result, nil
}

func (uc *userUseCaseImpl) DeleteUser(ctx context.Context, id uuid.UUID) (*DeleteUserResult, error) {
	release, err := uc.locks.Hold(ctx, shared.LockKeys.User(id))
	if err != nil {
		return nil, err
	}
	defer release()

	var result DeleteUserResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByID(ctx, id)
		if err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}

		open, err := tx.Issues().ListByUser(ctx, u.ID())
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		for _, iss := range open {
			b, err := tx.Books().FindByID(ctx, iss.Book().ID)
			if err != nil {
				if isNotFound(err) {
					continue
				}
				return err
			}
			b.IncrementStock(now)
			if _, err := tx.Books().IncrementStock(ctx, b); err != nil {
				return err
			}
		}

		if result.IssuesClosed, err = tx.Issues().DeleteAllForUser(ctx, u.ID()); err != nil {
			return err
		}
		if result.ActivitiesRemoved, err = tx.Activities().DeleteAllForUser(ctx, u.ID()); err != nil {
			return err
		}
		if err := tx.Users().Delete(ctx, u.ID()); err != nil {
			return asNotFound(err, errs.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user deleted",
		"user_id", id,
		"issues_closed", result.IssuesClosed,
		"activities_removed", result.ActivitiesRemoved)
	return &result, nil
}
