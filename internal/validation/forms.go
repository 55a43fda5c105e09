package validation

import (
	"strings"

	"bizdesk_backend/internal/models"
	"bizdesk_backend/pkg/utils"
)

// ClientForm is the add-client dialog.
type ClientForm struct {
	Name                string  `json:"name" validate:"required,min=2"`
	Email               string  `json:"email" validate:"required,email"`
	Phone               *string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Address             *string `json:"address,omitempty" validate:"omitempty,max=255"`
	PostalCode          *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Nationality         *string `json:"nationality,omitempty" validate:"omitempty,max=80"`
	DateOfBirth         *string `json:"date_of_birth,omitempty" validate:"omitempty,ymd"`
	AppointmentDateTime *string `json:"appointment_date_time,omitempty" validate:"omitempty,ymdhm"`
}

// Normalize trims input and drops blank optional fields.
func (f *ClientForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = utils.NormalizeOptional(f.Phone)
	f.Address = utils.NormalizeOptional(f.Address)
	f.PostalCode = utils.NormalizeOptional(f.PostalCode)
	f.Nationality = utils.NormalizeOptional(f.Nationality)
	f.DateOfBirth = utils.NormalizeOptional(f.DateOfBirth)
	f.AppointmentDateTime = utils.NormalizeOptional(f.AppointmentDateTime)
}

// ClientUpdateForm is the edit-client dialog: the full record minus identity.
type ClientUpdateForm struct {
	ClientForm
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// Normalize trims input and drops blank optional fields.
func (f *ClientUpdateForm) Normalize() {
	f.ClientForm.Normalize()
	f.Status = strings.TrimSpace(f.Status)
}

// ClientUpdateFormFrom pre-populates the edit dialog from a stored client.
func ClientUpdateFormFrom(c models.Client) ClientUpdateForm {
	return ClientUpdateForm{
		ClientForm: ClientForm{
			Name:                c.Name,
			Email:               c.Email,
			Phone:               c.Phone,
			Address:             c.Address,
			PostalCode:          c.PostalCode,
			Nationality:         c.Nationality,
			DateOfBirth:         c.DateOfBirth,
			AppointmentDateTime: c.AppointmentDateTime,
		},
		Status: string(c.Status),
	}
}

// ClientNoteForm adds a note to a client.
type ClientNoteForm struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// Normalize trims the note text.
func (f *ClientNoteForm) Normalize() { f.Text = strings.TrimSpace(f.Text) }

// NoteForm is the personal note dialog.
type NoteForm struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
}

// Normalize trims the title; content keeps its inner whitespace.
func (f *NoteForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	if strings.TrimSpace(f.Content) == "" {
		f.Content = ""
	}
}

// SettingsForm is a partial settings save; nil fields are left untouched.
type SettingsForm struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,max=120"`
	Timezone     *string `json:"timezone,omitempty" validate:"omitempty,timezone"`
	BusinessType *string `json:"business_type,omitempty" validate:"omitempty,businesstype"`
}

// Normalize drops blank fields.
func (f *SettingsForm) Normalize() {
	f.CompanyName = utils.NormalizeOptional(f.CompanyName)
	f.Timezone = utils.NormalizeOptional(f.Timezone)
	f.BusinessType = utils.NormalizeOptional(f.BusinessType)
}

// FeedbackForm is a feedback submission.
type FeedbackForm struct {
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Message string  `json:"message" validate:"required,max=5000"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// Normalize trims input and drops a blank email.
func (f *FeedbackForm) Normalize() {
	f.Email = utils.NormalizeOptional(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// MailForm enqueues an outbound mail.
type MailForm struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	HTML    string `json:"html" validate:"required"`
}

// Normalize trims the address and subject.
func (f *MailForm) Normalize() {
	f.To = strings.TrimSpace(f.To)
	f.Subject = strings.TrimSpace(f.Subject)
}

// TeamMemberForm invites an existing user by email.
type TeamMemberForm struct {
	Email string `json:"email" validate:"required,email"`
}

// Normalize trims and lower-cases the email.
func (f *TeamMemberForm) Normalize() { f.Email = strings.ToLower(strings.TrimSpace(f.Email)) }

// RegisterForm creates an account.
type RegisterForm struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=80"`
}

// Normalize trims and lower-cases the email.
func (f *RegisterForm) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.DisplayName = strings.TrimSpace(f.DisplayName)
}

// LoginForm exchanges credentials for tokens.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Normalize trims and lower-cases the email.
func (f *LoginForm) Normalize() { f.Email = strings.ToLower(strings.TrimSpace(f.Email)) }

// RefreshForm exchanges a refresh token for a new access token.
type RefreshForm struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChatTurn is one message of a chat request.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatForm asks the assistant for the next turn.
type ChatForm struct {
	Model    string     `json:"model,omitempty" validate:"omitempty,max=120"`
	Messages []ChatTurn `json:"messages" validate:"required,min=1,dive"`
}
