package catalog

// Notification text keys. The UI resolves them through its localization
// table; descriptions ending in Desc may carry a recipe name argument.
const (
	MsgFetchError       = "error_fetching_recipes"
	MsgDetailError      = "error_fetching_recipe_details"
	MsgDetailErrorDesc  = "recipe_could_not_be_loaded"
	MsgTryAgainLater    = "please_try_again_later"
	MsgValidationError  = "validation_error"
	MsgNameRequired     = "recipe_name_required"
	MsgRecipeAdded      = "recipe_added"
	MsgRecipeAddedDesc  = "recipe_added_desc"
	MsgAddError         = "error_adding_recipe"
	MsgRecipeUpdated    = "recipe_updated"
	MsgRecipeUpdateDesc = "recipe_updated_desc"
	MsgUpdateError      = "error_updating_recipe"
	MsgRecipeDeleted    = "recipe_deleted"
	MsgRecipeDeleteDesc = "recipe_deleted_desc"
	MsgDeleteError      = "error_deleting_recipe"
	MsgBookmarkAdded    = "added_to_bookmarks"
	MsgBookmarkRemoved  = "removed_from_bookmarks"
)

// Empty-state text keys
const (
	MsgNoRecipesFound     = "no_recipes_found"
	MsgAdjustFilters      = "try_adjusting_filters"
	MsgNoRecipesAvailable = "no_recipes_available"
)
