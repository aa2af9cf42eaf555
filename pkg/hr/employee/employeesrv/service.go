package employeesrv

import (
	"context"
	"time"

	"github.com/talenta-pe/talenta/pkg/hr/employee"
	"github.com/talenta-pe/talenta/pkg/hr/leave"
	"github.com/talenta-pe/talenta/pkg/kernel"
)

// EmployeeService proporciona operaciones de lectura y mantenimiento sobre
// los perfiles de empleados y sus saldos de vacaciones
type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.BalanceRepository
}

// NewEmployeeService crea una nueva instancia del servicio de empleados
func NewEmployeeService(employeeRepo employee.EmployeeRepository, leaveRepo leave.BalanceRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
	}
}

// GetEmployee obtiene el perfil de un empleado por el id de su cuenta
func (s *EmployeeService) GetEmployee(ctx context.Context, userID kernel.UserID) (*employee.Employee, error) {
	return s.employeeRepo.FindByUserID(ctx, userID)
}

// ListEmployees lista los perfiles de empleados paginados
func (s *EmployeeService) ListEmployees(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employee.Employee], error) {
	return s.employeeRepo.FindAll(ctx, pagination)
}

// GetLeaveBalance obtiene el saldo de vacaciones del empleado para el año dado;
// con year en cero se usa el año en curso
func (s *EmployeeService) GetLeaveBalance(ctx context.Context, userID kernel.UserID, year int) (*leave.Balance, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	return s.leaveRepo.FindByUserAndYear(ctx, userID, year)
}

// DeactivateEmployee marca el perfil como inactivo
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, userID kernel.UserID) (*employee.Employee, error) {
	e, err := s.employeeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	e.Deactivate()
	if err := s.employeeRepo.Upsert(ctx, *e); err != nil {
		return nil, err
	}

	return e, nil
}
