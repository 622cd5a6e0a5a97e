package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"

	"github.com/ytget/recipebook/internal/catalog"
	"github.com/ytget/recipebook/internal/config"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Notification and empty-state keys come from
// the catalog package.
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyView              = "view"
	KeyLanguage          = "language"
	KeyRefresh           = "refresh"
	KeyToggleTheme       = "toggle_theme"
	KeySearchPlaceholder = "search_placeholder"
	KeyAllTags           = "all_tags"
	KeyClearFilters      = "clear_filters"
	KeyAddRecipe         = "add_recipe"
	KeyShowing           = "showing"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyLoading           = "loading"
	KeyBadgeSearch       = "badge_search"
	KeyBadgeTag          = "badge_tag"
	KeyBadgeMeal         = "badge_meal"
	KeyBadgeSort         = "badge_sort"

	KeyEdit           = "edit"
	KeyDelete         = "delete"
	KeyClose          = "close"
	KeyCancel         = "cancel"
	KeyOpenImage      = "open_image"
	KeyBookmark       = "bookmark"
	KeyUnbookmark     = "unbookmark"
	KeyDeleteTitle    = "delete_title"
	KeyDeleteConfirm  = "delete_confirm"
	KeyIngredients    = "ingredients"
	KeyInstructions   = "instructions"
	KeyPrepTime       = "prep_time"
	KeyCookTime       = "cook_time"
	KeyServings       = "servings"
	KeyCalories       = "calories"
	KeyRating         = "rating"
	KeyCuisine        = "cuisine"
	KeyDifficulty     = "difficulty"
	KeyTags           = "tags"
	KeyMealTypes      = "meal_types"
	KeyImageURL       = "image_url"
	KeyName           = "name"
	KeyAddTitle       = "add_title"
	KeyEditTitle      = "edit_title"
	KeyCreate         = "create"
	KeySaveChanges    = "save_changes"
	KeyCommaSeparated = "comma_separated"
	KeyOnePerLine     = "one_per_line"
	KeyNamePrompt     = "name_prompt"
	KeyMinutes        = "minutes"
)

// optionKeyPrefix builds keys for picker labels ("option_breakfast")
const optionKeyPrefix = "option_"

// Language codes
const (
	LanguageSystem   = config.DefaultLanguage
	FallbackLanguage = "en"
)

// detectLanguage reports the two-letter desktop language
var detectLanguage = locale.GetLanguage

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: FallbackLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the desktop
// language when it is translated, English otherwise.
func (l *Localization) SetLanguage(lang string) {
	if lang == LanguageSystem {
		lang = l.systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage asks the OS for its language
func (l *Localization) systemLanguage() string {
	lang, err := detectLanguage()
	if err != nil {
		log.Printf("Failed to detect system language: %v", err)
		return FallbackLanguage
	}
	lang = strings.ToLower(lang)
	if _, exists := l.texts[lang]; exists {
		return lang
	}
	return FallbackLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[FallbackLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	text := l.GetText(key)
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// OptionLabel returns the localized label of a picker value, or fallback
func (l *Localization) OptionLabel(value, fallback string) string {
	key := optionKeyPrefix + value
	if text := l.GetText(key); text != key {
		return text
	}
	return fallback
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Recipe Book",
		KeyFile:              "File",
		KeyView:              "View",
		KeyLanguage:          "Language",
		KeyRefresh:           "Refresh",
		KeyToggleTheme:       "Toggle Theme",
		KeySearchPlaceholder: "Search recipes...",
		KeyAllTags:           "All tags",
		KeyClearFilters:      "Clear Filters",
		KeyAddRecipe:         "Add Recipe",
		KeyShowing:           "Showing %d-%d of %d recipes",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyLoading:           "Loading recipes...",
		KeyBadgeSearch:       "Search: %s",
		KeyBadgeTag:          "Tag: %s",
		KeyBadgeMeal:         "Meal: %s",
		KeyBadgeSort:         "Sort: %s",

		KeyEdit:           "Edit",
		KeyDelete:         "Delete",
		KeyClose:          "Close",
		KeyCancel:         "Cancel",
		KeyOpenImage:      "Open Image",
		KeyBookmark:       "Bookmark",
		KeyUnbookmark:     "Remove Bookmark",
		KeyDeleteTitle:    "Delete Recipe",
		KeyDeleteConfirm:  "Delete %s? This cannot be undone.",
		KeyIngredients:    "Ingredients",
		KeyInstructions:   "Instructions",
		KeyPrepTime:       "Prep Time",
		KeyCookTime:       "Cook Time",
		KeyServings:       "Servings",
		KeyCalories:       "Calories",
		KeyRating:         "Rating",
		KeyCuisine:        "Cuisine",
		KeyDifficulty:     "Difficulty",
		KeyTags:           "Tags",
		KeyMealTypes:      "Meal Types",
		KeyImageURL:       "Image URL",
		KeyName:           "Name",
		KeyAddTitle:       "Add New Recipe",
		KeyEditTitle:      "Edit Recipe",
		KeyCreate:         "Create Recipe",
		KeySaveChanges:    "Save Changes",
		KeyCommaSeparated: "Comma separated",
		KeyOnePerLine:     "One step per line",
		KeyNamePrompt:     "Recipe name",
		KeyMinutes:        "%d min",

		catalog.MsgFetchError:       "Error fetching recipes",
		catalog.MsgDetailError:      "Error fetching recipe details",
		catalog.MsgDetailErrorDesc:  "Recipe could not be loaded",
		catalog.MsgTryAgainLater:    "Please try again later",
		catalog.MsgValidationError:  "Validation Error",
		catalog.MsgNameRequired:     "Recipe name is required",
		catalog.MsgRecipeAdded:      "Recipe added successfully!",
		catalog.MsgRecipeAddedDesc:  "%s has been created.",
		catalog.MsgAddError:         "Error adding recipe",
		catalog.MsgRecipeUpdated:    "Recipe updated successfully!",
		catalog.MsgRecipeUpdateDesc: "%s has been updated.",
		catalog.MsgUpdateError:      "Error updating recipe",
		catalog.MsgRecipeDeleted:    "Recipe deleted successfully!",
		catalog.MsgRecipeDeleteDesc: "The recipe has been removed.",
		catalog.MsgDeleteError:      "Error deleting recipe",
		catalog.MsgBookmarkAdded:    "Added to bookmarks",
		catalog.MsgBookmarkRemoved:  "Removed from bookmarks",

		catalog.MsgNoRecipesFound:     "No recipes found",
		catalog.MsgAdjustFilters:      "Try adjusting your filters",
		catalog.MsgNoRecipesAvailable: "No recipes available",

		optionKeyPrefix + "all":                "All meals",
		optionKeyPrefix + "breakfast":          "Breakfast",
		optionKeyPrefix + "lunch":              "Lunch",
		optionKeyPrefix + "dinner":             "Dinner",
		optionKeyPrefix + "snack":              "Snack",
		optionKeyPrefix + "dessert":            "Dessert",
		optionKeyPrefix + "default":            "Default",
		optionKeyPrefix + "name":               "Name",
		optionKeyPrefix + "caloriesPerServing": "Calories",
		optionKeyPrefix + "prepTimeMinutes":    "Prep Time",
		optionKeyPrefix + "rating":             "Rating",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Книга рецептов",
		KeyFile:              "Файл",
		KeyView:              "Вид",
		KeyLanguage:          "Язык",
		KeyRefresh:           "Обновить",
		KeyToggleTheme:       "Сменить тему",
		KeySearchPlaceholder: "Поиск рецептов...",
		KeyAllTags:           "Все теги",
		KeyClearFilters:      "Сбросить фильтры",
		KeyAddRecipe:         "Добавить рецепт",
		KeyShowing:           "Показано %d-%d из %d рецептов",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeyLoading:           "Загрузка рецептов...",
		KeyBadgeSearch:       "Поиск: %s",
		KeyBadgeTag:          "Тег: %s",
		KeyBadgeMeal:         "Приём пищи: %s",
		KeyBadgeSort:         "Сортировка: %s",

		KeyEdit:           "Изменить",
		KeyDelete:         "Удалить",
		KeyClose:          "Закрыть",
		KeyCancel:         "Отмена",
		KeyOpenImage:      "Открыть изображение",
		KeyBookmark:       "В закладки",
		KeyUnbookmark:     "Убрать из закладок",
		KeyDeleteTitle:    "Удаление рецепта",
		KeyDeleteConfirm:  "Удалить %s? Это действие нельзя отменить.",
		KeyIngredients:    "Ингредиенты",
		KeyInstructions:   "Приготовление",
		KeyPrepTime:       "Подготовка",
		KeyCookTime:       "Готовка",
		KeyServings:       "Порции",
		KeyCalories:       "Калории",
		KeyRating:         "Рейтинг",
		KeyCuisine:        "Кухня",
		KeyDifficulty:     "Сложность",
		KeyTags:           "Теги",
		KeyMealTypes:      "Приёмы пищи",
		KeyImageURL:       "URL изображения",
		KeyName:           "Название",
		KeyAddTitle:       "Новый рецепт",
		KeyEditTitle:      "Редактирование рецепта",
		KeyCreate:         "Создать рецепт",
		KeySaveChanges:    "Сохранить",
		KeyCommaSeparated: "Через запятую",
		KeyOnePerLine:     "Один шаг на строку",
		KeyNamePrompt:     "Название рецепта",
		KeyMinutes:        "%d мин",

		catalog.MsgFetchError:       "Ошибка загрузки рецептов",
		catalog.MsgDetailError:      "Ошибка загрузки рецепта",
		catalog.MsgDetailErrorDesc:  "Не удалось загрузить рецепт",
		catalog.MsgTryAgainLater:    "Попробуйте позже",
		catalog.MsgValidationError:  "Ошибка проверки",
		catalog.MsgNameRequired:     "Название рецепта обязательно",
		catalog.MsgRecipeAdded:      "Рецепт добавлен!",
		catalog.MsgRecipeAddedDesc:  "%s создан.",
		catalog.MsgAddError:         "Ошибка добавления рецепта",
		catalog.MsgRecipeUpdated:    "Рецепт обновлён!",
		catalog.MsgRecipeUpdateDesc: "%s обновлён.",
		catalog.MsgUpdateError:      "Ошибка обновления рецепта",
		catalog.MsgRecipeDeleted:    "Рецепт удалён!",
		catalog.MsgRecipeDeleteDesc: "Рецепт был удалён.",
		catalog.MsgDeleteError:      "Ошибка удаления рецепта",
		catalog.MsgBookmarkAdded:    "Добавлено в закладки",
		catalog.MsgBookmarkRemoved:  "Удалено из закладок",

		catalog.MsgNoRecipesFound:     "Рецепты не найдены",
		catalog.MsgAdjustFilters:      "Попробуйте изменить фильтры",
		catalog.MsgNoRecipesAvailable: "Нет доступных рецептов",

		optionKeyPrefix + "all":                "Все приёмы пищи",
		optionKeyPrefix + "breakfast":          "Завтрак",
		optionKeyPrefix + "lunch":              "Обед",
		optionKeyPrefix + "dinner":             "Ужин",
		optionKeyPrefix + "snack":              "Перекус",
		optionKeyPrefix + "dessert":            "Десерт",
		optionKeyPrefix + "default":            "По умолчанию",
		optionKeyPrefix + "name":               "Название",
		optionKeyPrefix + "caloriesPerServing": "Калории",
		optionKeyPrefix + "prepTimeMinutes":    "Время подготовки",
		optionKeyPrefix + "rating":             "Рейтинг",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Livro de Receitas",
		KeyFile:              "Arquivo",
		KeyView:              "Exibir",
		KeyLanguage:          "Idioma",
		KeyRefresh:           "Atualizar",
		KeyToggleTheme:       "Alternar Tema",
		KeySearchPlaceholder: "Buscar receitas...",
		KeyAllTags:           "Todas as tags",
		KeyClearFilters:      "Limpar Filtros",
		KeyAddRecipe:         "Adicionar Receita",
		KeyShowing:           "Mostrando %d-%d de %d receitas",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próxima",
		KeyLoading:           "Carregando receitas...",
		KeyBadgeSearch:       "Busca: %s",
		KeyBadgeTag:          "Tag: %s",
		KeyBadgeMeal:         "Refeição: %s",
		KeyBadgeSort:         "Ordenar: %s",

		KeyEdit:           "Editar",
		KeyDelete:         "Excluir",
		KeyClose:          "Fechar",
		KeyCancel:         "Cancelar",
		KeyOpenImage:      "Abrir Imagem",
		KeyBookmark:       "Favoritar",
		KeyUnbookmark:     "Remover Favorito",
		KeyDeleteTitle:    "Excluir Receita",
		KeyDeleteConfirm:  "Excluir %s? Esta ação não pode ser desfeita.",
		KeyIngredients:    "Ingredientes",
		KeyInstructions:   "Modo de Preparo",
		KeyPrepTime:       "Preparo",
		KeyCookTime:       "Cozimento",
		KeyServings:       "Porções",
		KeyCalories:       "Calorias",
		KeyRating:         "Avaliação",
		KeyCuisine:        "Culinária",
		KeyDifficulty:     "Dificuldade",
		KeyTags:           "Tags",
		KeyMealTypes:      "Refeições",
		KeyImageURL:       "URL da Imagem",
		KeyName:           "Nome",
		KeyAddTitle:       "Nova Receita",
		KeyEditTitle:      "Editar Receita",
		KeyCreate:         "Criar Receita",
		KeySaveChanges:    "Salvar Alterações",
		KeyCommaSeparated: "Separados por vírgula",
		KeyOnePerLine:     "Um passo por linha",
		KeyNamePrompt:     "Nome da receita",
		KeyMinutes:        "%d min",

		catalog.MsgFetchError:       "Erro ao carregar receitas",
		catalog.MsgDetailError:      "Erro ao carregar detalhes da receita",
		catalog.MsgDetailErrorDesc:  "A receita não pôde ser carregada",
		catalog.MsgTryAgainLater:    "Tente novamente mais tarde",
		catalog.MsgValidationError:  "Erro de Validação",
		catalog.MsgNameRequired:     "O nome da receita é obrigatório",
		catalog.MsgRecipeAdded:      "Receita adicionada com sucesso!",
		catalog.MsgRecipeAddedDesc:  "%s foi criada.",
		catalog.MsgAddError:         "Erro ao adicionar receita",
		catalog.MsgRecipeUpdated:    "Receita atualizada com sucesso!",
		catalog.MsgRecipeUpdateDesc: "%s foi atualizada.",
		catalog.MsgUpdateError:      "Erro ao atualizar receita",
		catalog.MsgRecipeDeleted:    "Receita excluída com sucesso!",
		catalog.MsgRecipeDeleteDesc: "A receita foi removida.",
		catalog.MsgDeleteError:      "Erro ao excluir receita",
		catalog.MsgBookmarkAdded:    "Adicionada aos favoritos",
		catalog.MsgBookmarkRemoved:  "Removida dos favoritos",

		catalog.MsgNoRecipesFound:     "Nenhuma receita encontrada",
		catalog.MsgAdjustFilters:      "Tente ajustar os filtros",
		catalog.MsgNoRecipesAvailable: "Nenhuma receita disponível",

		optionKeyPrefix + "all":                "Todas as refeições",
		optionKeyPrefix + "breakfast":          "Café da manhã",
		optionKeyPrefix + "lunch":              "Almoço",
		optionKeyPrefix + "dinner":             "Jantar",
		optionKeyPrefix + "snack":              "Lanche",
		optionKeyPrefix + "dessert":            "Sobremesa",
		optionKeyPrefix + "default":            "Padrão",
		optionKeyPrefix + "name":               "Nome",
		optionKeyPrefix + "caloriesPerServing": "Calorias",
		optionKeyPrefix + "prepTimeMinutes":    "Tempo de Preparo",
		optionKeyPrefix + "rating":             "Avaliação",
	}
}
