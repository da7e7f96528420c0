package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/investapp/backend/internal/domain/entities"
)

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolve usuário ativo para sua identidade", func(t *testing.T) {
		repo := newFakeUserRepo()
		userService := NewUserService(repo, nopLogger{})

		input := validUserInput()
		input.Role = string(entities.RoleAdmin)
		user, err := userService.CreateUser(ctx, input)
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		identity := NewIdentityService(repo)
		caller, err := identity.Resolve(ctx, user.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if caller == nil {
			t.Fatal("esperava identidade resolvida")
		}
		if caller.ID != user.ID || caller.Role != entities.RoleAdmin {
			t.Errorf("identidade incorreta: %+v", caller)
		}
	})

	t.Run("id desconhecido resolve para anônimo", func(t *testing.T) {
		identity := NewIdentityService(newFakeUserRepo())

		caller, err := identity.Resolve(ctx, uuid.New())
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if caller != nil {
			t.Errorf("esperava nil para id desconhecido, obteve %+v", caller)
		}
	})

	t.Run("usuário removido logicamente resolve para anônimo", func(t *testing.T) {
		repo := newFakeUserRepo()
		userService := NewUserService(repo, nopLogger{})

		user, err := userService.CreateUser(ctx, validUserInput())
		if err != nil {
			t.Fatalf("setup falhou: %v", err)
		}
		if err := userService.DeleteUser(ctx, user.ID); err != nil {
			t.Fatalf("setup falhou: %v", err)
		}

		identity := NewIdentityService(repo)
		caller, err := identity.Resolve(ctx, user.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if caller != nil {
			t.Errorf("esperava nil para usuário inativo, obteve %+v", caller)
		}
	})
}
