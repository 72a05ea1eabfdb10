package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	CPF        string `json:"cpf" binding:"required,cpf"`
	Email      string `json:"email" binding:"required,email"`
	Role       string `json:"role" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Registration string `json:"registration"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Department   string `json:"department"`
	CreatedAt    string `json:"created_at,omitempty"`
}
