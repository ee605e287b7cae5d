// Package notify decides whether a project update warrants a client progress
// email and assembles the payload for it. It performs no I/O: actual delivery
// belongs to an external email dispatcher that consumes the payload from the
// update response.
package notify

import "lovgol/models"

// fallback used when a progress update carries no description.
const fallbackDescription = "No additional details provided."

// EmailData is the payload handed to the email dispatcher. Keys are
// snake_case to match the dispatch template contract.
type EmailData struct {
	ToEmail               string `json:"to_email"`
	ToName                string `json:"to_name"`
	ProjectTitle          string `json:"project_title"`
	ProgressPercentage    string `json:"progress_percentage"`
	ProgressDescription   string `json:"progress_description"`
	ProjectLink           string `json:"project_link"`
	EstimatedDeliveryDays string `json:"estimated_delivery_days"`
	ProjectHealth         string `json:"project_health"`
	DeliveryStatus        string `json:"delivery_status"`
	PaymentStatus         string `json:"payment_status"`
}

// Decision is the outcome of evaluating one project update.
type Decision struct {
	ShouldSend bool
	Email      *EmailData
}

// Evaluate compares the pre-update record against an update request and
// decides whether a progress notification is due. The trigger is deliberately
// narrow: only an update that includes progressPercentage with a value
// different from the stored one (plain string inequality) notifies. Edits to
// any other field, including progressDescription alone, never do — unrelated
// admin edits must not spam the client.
//
// requested is the progressPercentage from the update, nil when the field was
// absent. updated is the record after the merge; the payload is built
// entirely from it. baseURL is the caller-facing origin, e.g.
// "https://lovgol.com", used to reconstruct the client status page link.
func Evaluate(old *models.Project, requested *string, updated *models.Project, baseURL string) Decision {
	if old == nil || requested == nil || *requested == old.ProgressPercentage {
		return Decision{}
	}

	description := updated.ProgressDescription
	if description == "" {
		description = fallbackDescription
	}

	return Decision{
		ShouldSend: true,
		Email: &EmailData{
			ToEmail:               updated.ClientEmail,
			ToName:                updated.ClientName,
			ProjectTitle:          updated.Title,
			ProgressPercentage:    updated.ProgressPercentage,
			ProgressDescription:   description,
			ProjectLink:           baseURL + "/client-project/" + updated.ClientAccessToken,
			EstimatedDeliveryDays: updated.EstimatedDeliveryDays,
			ProjectHealth:         updated.ProjectHealth,
			DeliveryStatus:        updated.DeliveryStatus,
			PaymentStatus:         updated.PaymentStatus,
		},
	}
}
