package types

type TemplateStatus string

const (
	TemplateStatusApproved        TemplateStatus = "APPROVED"
	TemplateStatusPending         TemplateStatus = "PENDING"
	TemplateStatusRejected        TemplateStatus = "REJECTED"
	TemplateStatusPaused          TemplateStatus = "PAUSED"
	TemplateStatusDisabled        TemplateStatus = "DISABLED"
	TemplateStatusInAppeal        TemplateStatus = "IN_APPEAL"
	TemplateStatusPendingDeletion TemplateStatus = "PENDING_DELETION"
	TemplateStatusDeleted         TemplateStatus = "DELETED"
	TemplateStatusLimitExceeded   TemplateStatus = "LIMIT_EXCEEDED"
)

type TemplateCategory string

const (
	TemplateCategoryAuthentication TemplateCategory = "AUTHENTICATION"
	TemplateCategoryMarketing      TemplateCategory = "MARKETING"
	TemplateCategoryUtility        TemplateCategory = "UTILITY"
)
