package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salestrack_backend/internals/constants"
	"salestrack_backend/internals/features/reports/daily_records/service"
	usermodel "salestrack_backend/internals/features/users/user/model"
	helper "salestrack_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController { return &StatsController{DB: db} }

// GET /api/a/stats/daily?date=&zone=&group=
//
// group = zone | branch | (none). Without a group the augmented flat record
// list is returned. A zonal_manager only sees zones in their managed set.
func (sc *StatsController) DailyStats(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		return helper.JsonAppError(c, helper.NewValidationError("date", "required"))
	}

	zoneFilter := strings.TrimSpace(c.Query("zone"))
	group := strings.ToLower(strings.TrimSpace(c.Query("group")))
	if group != "" && group != "zone" && group != "branch" {
		return helper.JsonAppError(c, helper.NewValidationError("group", "must be zone or branch"))
	}

	// Zonal managers are scoped to their managed zones. Without an explicit
	// ?zone= a multi-zone manager gets the whole managed set, never the
	// org-wide rollup.
	var managedZones []string
	if role, _ := c.Locals("userRole").(string); role == constants.RoleZonalManager {
		userIDStr, _ := c.Locals("user_id").(string)
		var manager usermodel.UserModel
		if err := sc.DB.First(&manager, "id = ?", userIDStr).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
		}
		if zoneFilter == "" {
			if len(manager.ManagedZones) == 0 {
				return helper.JsonError(c, fiber.StatusForbidden, "No managed zones assigned")
			}
			if len(manager.ManagedZones) == 1 {
				zoneFilter = manager.ManagedZones[0]
			} else {
				managedZones = manager.ManagedZones
			}
		} else if !manager.ManagesZone(zoneFilter) {
			return helper.JsonError(c, fiber.StatusForbidden, "Zone outside your managed locations")
		}
	}

	rows, err := service.FetchJoined(sc.DB.WithContext(c.UserContext()), date)
	if err != nil {
		log.Println("[ERROR] DailyStats fetch:", err)
		return helper.JsonAppError(c, err)
	}

	rows = service.Augment(rows)
	rows = service.FilterByZone(rows, zoneFilter)
	rows = service.FilterByZones(rows, managedZones)

	if group == "" {
		return helper.JsonOK(c, "Stats fetched successfully", fiber.Map{
			"date":    date,
			"total":   len(rows),
			"records": rows,
		})
	}

	groups := service.GroupBy(rows, group)
	return helper.JsonOK(c, "Stats fetched successfully", fiber.Map{
		"date":   date,
		"group":  group,
		"total":  len(groups),
		"groups": groups,
	})
}
