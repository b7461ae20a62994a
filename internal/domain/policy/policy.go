// Package policy decides which roles may perform which actions.
// Ownership and assignment checks that need stored records live in the use cases;
// this package only holds the pure rules.
package policy

import (
	"slices"

	"github.com/google/uuid"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
)

// Action is a protected operation.
type Action string

const (
	ActionCreateShop          Action = "shop:create"
	ActionListMyShops         Action = "shop:list_mine"
	ActionManageProduct       Action = "product:manage"
	ActionCreateOrder         Action = "order:create"
	ActionListOrders          Action = "order:list"
	ActionViewOrder           Action = "order:view"
	ActionUpdateOrderStatus   Action = "order:update_status"
	ActionAssignDeliveryAgent Action = "order:assign"
	ActionListDeliveryAgents  Action = "delivery_agent:list"
	ActionCreateReview        Action = "review:create"
)

var allRoles = []entity.Role{entity.RoleCustomer, entity.RoleShopOwner, entity.RoleDeliveryAgent}

var rules = map[Action][]entity.Role{
	ActionCreateShop:          {entity.RoleShopOwner},
	ActionListMyShops:         {entity.RoleShopOwner},
	ActionManageProduct:       {entity.RoleShopOwner},
	ActionCreateOrder:         {entity.RoleCustomer},
	ActionListOrders:          allRoles,
	ActionViewOrder:           allRoles,
	ActionUpdateOrderStatus:   allRoles,
	ActionAssignDeliveryAgent: {entity.RoleShopOwner},
	ActionListDeliveryAgents:  {entity.RoleShopOwner},
	ActionCreateReview:        {entity.RoleCustomer},
}

// Allows reports whether the role may perform the action. Unknown actions are denied.
func Allows(role entity.Role, action Action) bool {
	roles, ok := rules[action]
	if !ok {
		return false
	}

	return slices.Contains(roles, role)
}

// Authorize returns ErrForbidden when the principal's role may not perform the action.
func Authorize(principal entity.Principal, action Action) error {
	if !Allows(principal.Role, action) {
		return domainerrors.ErrForbidden.WrapMessage(string(action))
	}

	return nil
}

// AuthorizeShopOwnership requires the principal to own the shop.
func AuthorizeShopOwnership(principal entity.Principal, shop *entity.Shop) error {
	if !shop.OwnedBy(principal.UserID) {
		return domainerrors.ErrForbidden.WrapMessage("shop is owned by another user")
	}

	return nil
}

// CanViewOrder applies the per-role visibility rule for a single order.
// Customers see only their own orders; other roles are not restricted.
func CanViewOrder(principal entity.Principal, order *entity.Order) bool {
	if principal.Is(entity.RoleCustomer) {
		return order.CustomerID == principal.UserID
	}

	return true
}

// CanUpdateOrderStatus requires delivery agents to be the assigned agent.
func CanUpdateOrderStatus(principal entity.Principal, order *entity.Order) bool {
	if principal.Is(entity.RoleDeliveryAgent) {
		return order.AssignedTo(principal.UserID)
	}

	return true
}

// OrderScope builds the listing filter for the principal. ownedShopIDs is only
// consulted for shop owners.
func OrderScope(principal entity.Principal, ownedShopIDs []uuid.UUID) entity.OrderFilter {
	userID := principal.UserID
	switch principal.Role {
	case entity.RoleCustomer:
		return entity.OrderFilter{CustomerID: &userID}
	case entity.RoleShopOwner:
		return entity.OrderFilter{ShopIDs: ownedShopIDs}
	default:
		return entity.OrderFilter{DeliveryAgentID: &userID}
	}
}
