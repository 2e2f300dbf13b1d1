package controller

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/dashboard/dto"
	helper "hadirku_backend/internals/helpers"
)

// DashboardController menyusun halaman home per role. Komposisi menu
// dilakukan dengan switch exhaustive atas varian Role, bukan perbandingan
// string tersebar.
type DashboardController struct{}

func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

func (dc *DashboardController) Home(c *fiber.Ctx) error {
	email, err := helper.SessionEmail(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	roleStr, _ := c.Locals(helper.LocSessionRole).(string)
	role, ok := constants.ParseRole(roleStr)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: unknown role")
	}

	return helper.Success(c, "OK", dto.HomeResponse{
		Email: email,
		Role:  role.String(),
		Menu:  ComposeMenu(role),
	})
}

// ComposeMenu mengembalikan struktur navigasi untuk satu role.
func ComposeMenu(role constants.Role) []dto.MenuItem {
	switch role {
	case constants.RoleAdmin:
		return []dto.MenuItem{
			{Label: "Home", Items: []dto.MenuItem{
				{Label: "Dashboard Admin", Icon: "pi pi-fw pi-home", To: "/admin/"},
			}},
			{Label: "KELOLA", Items: []dto.MenuItem{
				{Label: "Karyawan", Icon: "pi pi-fw pi-check-square", To: "/admin/DataKaryawan"},
				{Label: "Data Jabatan", Icon: "pi pi-fw pi-briefcase", To: "/admin/Datajabatan"},
				{Label: "Absensi", Icon: "pi pi-fw pi-calendar", Items: []dto.MenuItem{
					{Label: "Hadir", Icon: "pi pi-fw pi-info-circle", To: "/admin/Hadir"},
					{Label: "Cuti", Icon: "pi pi-fw pi-info-circle", To: "/admin/Cuti"},
				}},
				{Label: "Task", Icon: "pi pi-fw pi-book", To: "/admin/Task"},
				{Label: "Kinerja Karyawan", Icon: "pi pi-fw pi-book", To: "/admin/Kinerjakaryawan"},
				{Label: "Payroll", Icon: "pi pi-fw pi-money-bill", To: "/admin/Payroll"},
				{Label: "User Login", Icon: "pi pi-fw pi-users", To: "/admin/UserData"},
			}},
		}
	case constants.RoleUser:
		return []dto.MenuItem{
			{Label: "Home", Items: []dto.MenuItem{
				{Label: "Dashboard User", Icon: "pi pi-fw pi-home", To: "/user/"},
			}},
			{Label: "KELOLA", Items: []dto.MenuItem{
				{Label: "Absensi", Icon: "pi pi-fw pi-calendar", Items: []dto.MenuItem{
					{Label: "Hadir", Icon: "pi pi-fw pi-info-circle", To: "/user/Hadir"},
					{Label: "Cuti", Icon: "pi pi-fw pi-info-circle", To: "/user/Cuti"},
				}},
				{Label: "Task", Icon: "pi pi-fw pi-book", To: "/user/task"},
				{Label: "Kinerja Perbulan", Icon: "pi pi-fw pi-book", To: "/user/Kinerjaperbulan"},
				{Label: "Slip Gaji", Icon: "pi pi-fw pi-wallet", To: "/user/SlipGaji"},
				{Label: "Profile", Icon: "pi pi-fw pi-user", To: "/user/Profile"},
			}},
		}
	default:
		return nil
	}
}
