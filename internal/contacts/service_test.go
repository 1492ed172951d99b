package contacts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wrenchbill/internal/contacts"
)

func TestService_Add(t *testing.T) {
	type testCase struct {
		name      string
		params    contacts.AddParams
		setupMock func(m *contacts.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "NameAndPhone",
			params: contacts.AddParams{Name: "John Smith", Phone: "555-123-4567"},
			setupMock: func(m *contacts.MockRepository) {
				m.EXPECT().List(gomock.Any()).Return(nil, nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cs []contacts.Contact) error {
						if len(cs) != 1 || cs[0].Name != "John Smith" {
							return errors.New("unexpected save payload")
						}
						return nil
					})
			},
		},
		{
			name:   "NameAndEmail",
			params: contacts.AddParams{Name: "Sarah Johnson", Email: "sarah@email.com"},
			setupMock: func(m *contacts.MockRepository) {
				m.EXPECT().List(gomock.Any()).Return(nil, nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "MissingName",
			params:  contacts.AddParams{Phone: "555-123-4567"},
			wantErr: contacts.ErrNameRequired,
		},
		{
			name:    "InvalidEmailNoPhoneFallback",
			params:  contacts.AddParams{Name: "Jane Doe", Phone: "", Email: "not-an-email"},
			wantErr: contacts.ErrInvalidEmail,
		},
		{
			name:    "InvalidPhoneDespiteValidEmail",
			params:  contacts.AddParams{Name: "Jane Doe", Phone: "123", Email: "jane@email.com"},
			wantErr: contacts.ErrInvalidPhone,
		},
		{
			name:    "NoContactInfo",
			params:  contacts.AddParams{Name: "Jane Doe"},
			wantErr: contacts.ErrContactRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := contacts.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := contacts.NewService(repo)
			got, err := svc.Add(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Add_SanitizesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contacts.NewMockRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	var saved []contacts.Contact

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cs []contacts.Contact) error {
			saved = cs
			return nil
		})

	svc := contacts.NewService(repo)

	_, err := svc.Add(context.Background(), contacts.AddParams{
		Name:  `  <John> "Smith"  `,
		Phone: "555-123-4567",
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "John Smith", saved[0].Name)
}

func TestService_Search(t *testing.T) {
	all := []contacts.Contact{
		{ID: "1", Name: "John Smith"},
		{ID: "2", Name: "Sarah Johnson"},
		{ID: "3", Name: "Pete Alvarez"},
	}

	type testCase struct {
		name    string
		term    string
		wantIDs []string
	}

	tests := []testCase{
		{name: "EmptyTermReturnsAll", term: "", wantIDs: []string{"1", "2", "3"}},
		{name: "CaseInsensitiveSubstring", term: "john", wantIDs: []string{"1", "2"}},
		{name: "NoMatch", term: "zzz", wantIDs: []string{}},
		{name: "MatchOnNameOnly", term: "alva", wantIDs: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := contacts.NewMockRepository(ctrl)
			repo.EXPECT().List(gomock.Any()).Return(all, nil)

			svc := contacts.NewService(repo)

			got, err := svc.Search(context.Background(), tt.term)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
