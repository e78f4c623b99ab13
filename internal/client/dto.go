package client

import (
	"time"

	"eventconnect/internal/domain"
)

// The backend's wire vocabulary is French. These types exist only at the
// HTTP boundary; everything above it speaks the domain shapes.

type wireUser struct {
	ID    int    `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u wireUser) toDomain() *domain.User {
	return domain.NewUser(u.ID, u.Nom, u.Email, u.Role)
}

type wireAuthResponse struct {
	Token       string   `json:"token"`
	Utilisateur wireUser `json:"utilisateur"`
}

type wireEvent struct {
	ID              int       `json:"id"`
	Nom             string    `json:"nom"`
	Description     string    `json:"description"`
	Categorie       string    `json:"categorie"`
	Lieu            string    `json:"lieu"`
	Date            time.Time `json:"date"`
	MaxParticipants *int      `json:"max_participants"`
	Prix            *float64  `json:"prix"`
	Image           string    `json:"image"`
	Statut          string    `json:"statut"`
	CreatedAt       time.Time `json:"date_creation"`
}

func (e wireEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:              e.ID,
		Name:            e.Nom,
		Description:     e.Description,
		Category:        e.Categorie,
		Location:        e.Lieu,
		Date:            e.Date,
		MaxParticipants: e.MaxParticipants,
		Price:           e.Prix,
		ImageURL:        e.Image,
		Status:          e.Statut,
		CreatedAt:       e.CreatedAt,
	}
}

type wireEventInput struct {
	Nom             string    `json:"nom"`
	Description     string    `json:"description"`
	Categorie       string    `json:"categorie"`
	Lieu            string    `json:"lieu"`
	Date            time.Time `json:"date"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	Prix            *float64  `json:"prix,omitempty"`
	Image           string    `json:"image,omitempty"`
}

func eventInputToWire(in domain.EventInput) wireEventInput {
	return wireEventInput{
		Nom:             in.Name,
		Description:     in.Description,
		Categorie:       in.Category,
		Lieu:            in.Location,
		Date:            in.Date,
		MaxParticipants: in.MaxParticipants,
		Prix:            in.Price,
		Image:           in.ImageURL,
	}
}

type wireFavorite struct {
	UtilisateurID int       `json:"utilisateur_id"`
	EvenementID   int       `json:"evenement_id"`
	DateAjout     time.Time `json:"date_ajout"`
}

func (f wireFavorite) toDomain() *domain.Favorite {
	return &domain.Favorite{
		UserID:  f.UtilisateurID,
		EventID: f.EvenementID,
		AddedAt: f.DateAjout,
	}
}

type wireRegistration struct {
	ID            int    `json:"id"`
	UtilisateurID int    `json:"utilisateur_id"`
	EvenementID   int    `json:"evenement_id"`
	Statut        string `json:"statut"`
}

func (r wireRegistration) toDomain() *domain.Registration {
	return &domain.Registration{
		ID:      r.ID,
		UserID:  r.UtilisateurID,
		EventID: r.EvenementID,
		Status:  r.Statut,
	}
}
