package kernel

import "github.com/google/uuid"

// ============================================================================
// Typed IDs
// ============================================================================

// UserID identifica una cuenta de usuario (empleado o administrador)
type UserID string

func NewUserID(id string) UserID { return UserID(id) }

// GenerateUserID genera un nuevo UserID aleatorio
func GenerateUserID() UserID { return UserID(uuid.NewString()) }

func (id UserID) String() string { return string(id) }
func (id UserID) IsEmpty() bool  { return id == "" }

// PositionID identifica una vacante
type PositionID string

func NewPositionID(id string) PositionID { return PositionID(id) }
func GeneratePositionID() PositionID     { return PositionID(uuid.NewString()) }

func (id PositionID) String() string { return string(id) }
func (id PositionID) IsEmpty() bool  { return id == "" }

// CandidateID identifica un candidato
type CandidateID string

func NewCandidateID(id string) CandidateID { return CandidateID(id) }
func GenerateCandidateID() CandidateID     { return CandidateID(uuid.NewString()) }

func (id CandidateID) String() string { return string(id) }
func (id CandidateID) IsEmpty() bool  { return id == "" }

// ApplicationID identifica una postulación de un candidato a una vacante
type ApplicationID string

func NewApplicationID(id string) ApplicationID { return ApplicationID(id) }
func GenerateApplicationID() ApplicationID     { return ApplicationID(uuid.NewString()) }

func (id ApplicationID) String() string { return string(id) }
func (id ApplicationID) IsEmpty() bool  { return id == "" }

// InterviewID identifica una entrevista
type InterviewID string

func NewInterviewID(id string) InterviewID { return InterviewID(id) }
func GenerateInterviewID() InterviewID     { return InterviewID(uuid.NewString()) }

func (id InterviewID) String() string { return string(id) }
func (id InterviewID) IsEmpty() bool  { return id == "" }
