package rules

import "codereview/internal/types"

// backfillFindings are the general Python suggestions
func backfillFindings() []types.Finding {
	return []types.Finding{
		createFinding(types.CategoryNaming, types.SeverityModerate, "Use meaningful variable names instead of single letters."),
		createFinding(types.CategoryTypeSafety, types.SeverityCritical, "Consider adding type hints for better readability."),
		createFinding(types.CategoryHardcoding, types.SeverityCritical, "Avoid hardcoded values; use constants or config files."),
	}
}

// genericFindings is returned for every language other than Python,
// independent of the code
func genericFindings() []types.Finding {
	return []types.Finding{
		createFinding(types.CategoryNaming, types.SeverityModerate, "Improve naming conventions for variables/functions."),
		createFinding(types.CategoryFunctionSize, types.SeverityCritical, "Break down large functions into reusable modules."),
		createFinding(types.CategoryErrorHandling, types.SeverityCritical, "Add error handling for robustness."),
	}
}

const genericExemplar = "// Refactored version would go here depending on language"

const pythonExemplar = `def calculate_sum(num1: float, num2: float) -> float:
    """
    Calculate the sum of two numbers with validation.
    
    Args:
        num1 (float): First number
        num2 (float): Second number
    
    Returns:
        float: Sum of inputs
    """
    if not isinstance(num1, (int, float)) or not isinstance(num2, (int, float)):
        raise ValueError("Inputs must be numeric.")
    return num1 + num2

if __name__ == "__main__":
    try:
        result = calculate_sum(10, 20)
        print(f"Result: {result}")
    except Exception as e:
        print(f"Error occurred: {e}")
`
